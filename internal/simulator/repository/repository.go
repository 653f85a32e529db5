package repository

import (
	"context"
	"database/sql"

	"soundctl/internal/models"
)

type ScheduleRepo interface {
	ListWeek(ctx context.Context) (models.WeekSchedule, error)
	ListDay(ctx context.Context, day string) ([]models.ScheduleSlot, error)
	ListActive(ctx context.Context) ([]models.ScheduleSlot, error)
	GetSlot(ctx context.Context, day string, slotID int) (models.ScheduleSlot, error)
	Insert(ctx context.Context, slot models.ScheduleSlotCreate) (models.ScheduleSlot, error)
	Update(ctx context.Context, day string, slotID int, upd models.ScheduleSlotUpdate) (models.ScheduleSlot, error)
	Delete(ctx context.Context, day string, slotID int) error
	Replace(ctx context.Context, slots []models.ScheduleSlotCreate) error
	Count(ctx context.Context) (int, error)
}

type ExecutionLogRepo interface {
	Append(ctx context.Context, programName, status string, errorMessage *string) error
	ListRecent(ctx context.Context, limit int) ([]models.ExecutionLog, error)
}

type Repository struct {
	Schedule ScheduleRepo
	Logs     ExecutionLogRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Schedule: NewScheduleSQLite(db),
		Logs:     NewExecutionLogSQLite(db),
	}
}
