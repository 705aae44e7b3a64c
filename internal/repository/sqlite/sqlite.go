package sqlite

import (
	"io"
	"log/slog"

	"github.com/carelink/carelink/internal/db"
	"github.com/carelink/carelink/pkg/repository"
)

// SQLiteRepo implements the repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.UserRepo = (*SQLiteRepo)(nil)
var _ repository.CaregiverRepo = (*SQLiteRepo)(nil)
var _ repository.MemberRepo = (*SQLiteRepo)(nil)
var _ repository.AddressRepo = (*SQLiteRepo)(nil)
var _ repository.JobRepo = (*SQLiteRepo)(nil)
var _ repository.JobApplicationRepo = (*SQLiteRepo)(nil)
var _ repository.AppointmentRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}
