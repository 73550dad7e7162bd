package repository

import (
	"context"
	"log/slog"

	"pickup-scheduler/internal/domain/appointment"
	"pickup-scheduler/internal/infra"
	"pickup-scheduler/internal/infra/sheet"
	"pickup-scheduler/internal/pkg/config"
)

const appointmentsSheet = "Appointments"

// FileStore is the remote document library, addressed by path.
type FileStore interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
	Store(ctx context.Context, path string, data []byte) error
}

type AppointmentRepository struct {
	store  FileStore
	path   string
	logger *slog.Logger
}

func NewAppointmentRepository(store FileStore, cfg config.Config, logger *slog.Logger) *AppointmentRepository {
	return &AppointmentRepository{
		store:  store,
		path:   cfg.Files.AppointmentsPath,
		logger: logger,
	}
}

// Load reads the appointments file. A missing file is an empty book; it is created on the first Save.
func (r *AppointmentRepository) Load(ctx context.Context) (*appointment.Book, error) {
	data, err := r.store.Fetch(ctx, r.path)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			r.logger.Info("appointments file not found, starting empty", "path", r.path)
			return &appointment.Book{}, nil
		}
		return nil, err
	}

	table, err := sheet.Decode(r.path, data, sheet.DecodeOptions{})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindMalformed, "failed to parse appointments file", err)
	}

	book := &appointment.Book{}
	for _, h := range table.Header {
		if !isAppointmentColumn(h) {
			book.ExtraColumns = append(book.ExtraColumns, h)
		}
	}
	for _, rec := range table.Rows {
		book.Entries = append(book.Entries, appointment.FromRecord(rec))
	}
	return book, nil
}

func (r *AppointmentRepository) Save(ctx context.Context, book *appointment.Book) error {
	rows := make([]map[string]string, 0, len(book.Entries))
	for _, a := range book.Entries {
		rows = append(rows, a.Record())
	}

	data, err := sheet.Encode(r.path, book.Header(), rows, sheet.EncodeOptions{SheetName: appointmentsSheet})
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindMalformed, "failed to encode appointments file", err)
	}

	if err := r.store.Store(ctx, r.path, data); err != nil {
		return err
	}
	r.logger.Debug("appointments file saved", "path", r.path, "rows", len(rows))
	return nil
}

func isAppointmentColumn(h string) bool {
	for _, c := range appointment.Columns {
		if c == h {
			return true
		}
	}
	return false
}
