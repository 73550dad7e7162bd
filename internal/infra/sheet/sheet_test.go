//go:build unit

package sheet_test

import (
	"bytes"
	"testing"

	"pickup-scheduler/internal/infra/sheet"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var header = []string{"OrderNumber", "Appointment_Date", "Appointment_Time", "Customer_Email", "Created_Time"}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    sheet.Format
		wantErr bool
	}{
		{name: "csv", path: "/Sunique Wiki/appointments.csv", want: sheet.FormatCSV},
		{name: "xlsx upper case", path: "/Orders/READY.XLSX", want: sheet.FormatXLSX},
		{name: "xlsm", path: "ready.xlsm", want: sheet.FormatXLSX},
		{name: "legacy xls", path: "ready.xls", wantErr: true},
		{name: "no extension", path: "ready", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sheet.FormatOf(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, sheet.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeDecode_CSV(t *testing.T) {
	rows := []map[string]string{
		{"OrderNumber": "SO-1", "Appointment_Date": "2025-01-15", "Appointment_Time": "9:00 AM", "Customer_Email": "a@example.com", "Created_Time": "2025-01-14T12:00:00Z"},
		{"OrderNumber": "SO-2", "Customer_Email": "b, c@example.com"},
	}

	data, err := sheet.Encode("appointments.csv", header, rows, sheet.EncodeOptions{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}), "csv output starts with a BOM")

	table, err := sheet.Decode("appointments.csv", data, sheet.DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, header, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, rows[0], table.Rows[0])
	assert.Equal(t, "b, c@example.com", table.Rows[1]["Customer_Email"])
	assert.Equal(t, "", table.Rows[1]["Appointment_Date"], "missing cells are written empty")
}

func TestDecode_CSV(t *testing.T) {
	t.Run("success: trims cells and skips blank rows", func(t *testing.T) {
		data := []byte("OrderNumber , Status\n SO-1 ,Ready\n,\n\nSO-2,\n")

		table, err := sheet.Decode("orders.csv", data, sheet.DecodeOptions{})
		require.NoError(t, err)

		want := []map[string]string{
			{"OrderNumber": "SO-1", "Status": "Ready"},
			{"OrderNumber": "SO-2", "Status": ""},
		}
		if diff := cmp.Diff(want, table.Rows); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("success: short rows are padded", func(t *testing.T) {
		table, err := sheet.Decode("orders.csv", []byte("A,B,C\n1\n"), sheet.DecodeOptions{})
		require.NoError(t, err)
		require.Len(t, table.Rows, 1)
		assert.Equal(t, map[string]string{"A": "1", "B": "", "C": ""}, table.Rows[0])
	})

	t.Run("success: empty file", func(t *testing.T) {
		table, err := sheet.Decode("orders.csv", nil, sheet.DecodeOptions{})
		require.NoError(t, err)
		assert.Empty(t, table.Header)
		assert.Empty(t, table.Rows)
	})

	t.Run("success: header found by marker below a title block", func(t *testing.T) {
		data := []byte("Ready for pickup report,,\nGenerated 01/15/2025,,\nSales Order,Ready Date,Status\nSO-1,01/15/2025,Ready\n")

		table, err := sheet.Decode("orders.csv", data, sheet.DecodeOptions{HeaderMarker: "Sales Order"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Sales Order", "Ready Date", "Status"}, table.Header)
		require.Len(t, table.Rows, 1)
		assert.Equal(t, "SO-1", table.Rows[0]["Sales Order"])
	})

	t.Run("success: marker outside the scan window falls back to the first row", func(t *testing.T) {
		data := []byte("Title\nSubtitle\nSales Order\nSO-1\n")

		table, err := sheet.Decode("orders.csv", data, sheet.DecodeOptions{HeaderMarker: "Sales Order", HeaderScan: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"Title"}, table.Header)
	})

	t.Run("error: unsupported extension", func(t *testing.T) {
		_, err := sheet.Decode("orders.xls", []byte("x"), sheet.DecodeOptions{})
		require.ErrorIs(t, err, sheet.ErrUnsupportedFormat)
	})
}

func TestEncodeDecode_XLSX(t *testing.T) {
	rows := []map[string]string{
		{"OrderNumber": "SO-1", "Appointment_Date": "2025-01-15", "Appointment_Time": "9:00 AM", "Customer_Email": "a@example.com", "Created_Time": "2025-01-14T12:00:00Z"},
	}

	data, err := sheet.Encode("appointments.xlsx", header, rows, sheet.EncodeOptions{SheetName: "Appointments"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Appointments"}, f.GetSheetList())

	table, err := sheet.Decode("appointments.xlsx", data, sheet.DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, header, table.Header)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, rows[0], table.Rows[0])
}

func TestDecode_XLSX_HeaderMarker(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Ready for pickup"))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"Sales Order", "Ready Date", "Status"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]any{"SO-9", "01/15/2025", "Ready"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	table, err := sheet.Decode("ready.xlsx", buf.Bytes(), sheet.DecodeOptions{HeaderMarker: "Sales Order"})
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, map[string]string{"Sales Order": "SO-9", "Ready Date": "01/15/2025", "Status": "Ready"}, table.Rows[0])
}

func TestEmpty(t *testing.T) {
	for _, path := range []string{"appointments.csv", "appointments.xlsx"} {
		t.Run(path, func(t *testing.T) {
			data, err := sheet.Empty(path, header, sheet.EncodeOptions{})
			require.NoError(t, err)

			table, err := sheet.Decode(path, data, sheet.DecodeOptions{})
			require.NoError(t, err)
			assert.Equal(t, header, table.Header)
			assert.Empty(t, table.Rows)
		})
	}
}
