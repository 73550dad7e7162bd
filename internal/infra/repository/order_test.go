//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"pickup-scheduler/internal/domain/order"
	"pickup-scheduler/internal/infra"
	"pickup-scheduler/internal/infra/repository"
	"pickup-scheduler/internal/pkg/config"
	"pickup-scheduler/tests/common/builder"
	mockrepo "pickup-scheduler/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

const ordersPath = "/Orders/ready.xlsx"

// readyWorkbook lays out the export the warehouse drops in the library: a title block, then the table.
func readyWorkbook(t *testing.T, records ...map[string]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	header := []any{order.ColumnOrderNumber, order.ColumnReadyDate, order.ColumnPickupStatus, order.ColumnStorageFee}
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Orders ready for pickup"))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &header))
	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+4)
		require.NoError(t, err)
		row := []any{rec[order.ColumnOrderNumber], rec[order.ColumnReadyDate], rec[order.ColumnPickupStatus], rec[order.ColumnStorageFee]}
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestOrderRepository_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("success: finds the header under the title and drops rows without a number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockrepo.NewMockFileStore(ctrl)
		repo := repository.NewOrderRepository(store, config.NewTestConfig(), discardLogger())

		ready := builder.NewOrderBuilder()
		pickedUp := builder.NewOrderBuilder().With(func(o *builder.OrderBuilder) { o.Number = "SO-2002" }).PickedUp()
		blank := builder.NewOrderBuilder().With(func(o *builder.OrderBuilder) { o.Number = "" })

		store.EXPECT().Fetch(gomock.Any(), ordersPath).
			Return(readyWorkbook(t, ready.BuildRecord(), blank.BuildRecord(), pickedUp.BuildRecord()), nil)

		catalog, err := repo.Load(ctx)
		require.NoError(t, err)

		want := order.Catalog{ready.BuildDomain(), pickedUp.BuildDomain()}
		if diff := cmp.Diff(want, catalog); diff != "" {
			t.Errorf("catalog mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: missing workbook is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockrepo.NewMockFileStore(ctrl)
		repo := repository.NewOrderRepository(store, config.NewTestConfig(), discardLogger())

		store.EXPECT().Fetch(gomock.Any(), ordersPath).
			Return(nil, infra.WrapRepoErr(discardLogger(), infra.KindNotFound, "file not found", errors.New("404")))

		_, err := repo.Load(ctx)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: corrupt workbook is MALFORMED", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mockrepo.NewMockFileStore(ctrl)
		repo := repository.NewOrderRepository(store, config.NewTestConfig(), discardLogger())

		store.EXPECT().Fetch(gomock.Any(), ordersPath).Return([]byte("garbage"), nil)

		_, err := repo.Load(ctx)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindMalformed))
	})
}
