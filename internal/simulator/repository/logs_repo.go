package repository

import (
	"context"
	"database/sql"
	"time"

	"soundctl/internal/models"
)

type ExecutionLogSQLite struct {
	db *sql.DB
}

func NewExecutionLogSQLite(db *sql.DB) *ExecutionLogSQLite { return &ExecutionLogSQLite{db: db} }

func (r *ExecutionLogSQLite) Append(ctx context.Context, programName, status string, errorMessage *string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO execution_logs (program_name, executed_at, status, error_message)
		VALUES (?, ?, ?, ?)
	`, programName, time.Now().UTC().Format(time.RFC3339), status, errorMessage)
	return err
}

// ListRecent returns the newest entries first.
func (r *ExecutionLogSQLite) ListRecent(ctx context.Context, limit int) ([]models.ExecutionLog, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, program_name, executed_at, status, error_message
		FROM execution_logs
		ORDER BY executed_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.ExecutionLog, 0, limit)
	for rows.Next() {
		var e models.ExecutionLog
		var msg sql.NullString
		if err := rows.Scan(&e.ID, &e.ProgramName, &e.ExecutedAt, &e.Status, &msg); err != nil {
			return nil, err
		}
		if msg.Valid {
			e.ErrorMessage = &msg.String
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
