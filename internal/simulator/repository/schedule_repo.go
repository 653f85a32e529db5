package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"soundctl/internal/models"
)

// ErrSlotNotFound is returned when (day, id) does not match a stored slot.
var ErrSlotNotFound = errors.New("repository: schedule slot not found")

const timestampLayout = "2006-01-02 15:04:05"

type ScheduleSQLite struct {
	db *sql.DB
}

func NewScheduleSQLite(db *sql.DB) *ScheduleSQLite { return &ScheduleSQLite{db: db} }

const selectSlotCols = `SELECT id, day_of_week, time, program_name, block_type, is_active, created_at, updated_at FROM schedule_slots`

func scanSlot(row interface{ Scan(...any) error }) (models.ScheduleSlot, error) {
	var s models.ScheduleSlot
	err := row.Scan(&s.ID, &s.DayOfWeek, &s.Time, &s.ProgramName, &s.BlockType, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *ScheduleSQLite) querySlots(ctx context.Context, q string, args ...any) ([]models.ScheduleSlot, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.ScheduleSlot, 0, 64)
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListWeek returns every slot keyed by weekday, time-ascending per day. Days
// with no slots still get an empty entry so the response always carries all
// seven keys.
func (r *ScheduleSQLite) ListWeek(ctx context.Context) (models.WeekSchedule, error) {
	slots, err := r.querySlots(ctx, selectSlotCols+` ORDER BY day_of_week, time ASC`)
	if err != nil {
		return nil, err
	}
	week := models.WeekSchedule{
		"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
		"friday": {}, "saturday": {}, "sunday": {},
	}
	for _, s := range slots {
		week[s.DayOfWeek] = append(week[s.DayOfWeek], s)
	}
	return week, nil
}

func (r *ScheduleSQLite) ListDay(ctx context.Context, day string) ([]models.ScheduleSlot, error) {
	return r.querySlots(ctx, selectSlotCols+` WHERE day_of_week = ? ORDER BY time ASC`, strings.ToLower(day))
}

func (r *ScheduleSQLite) ListActive(ctx context.Context) ([]models.ScheduleSlot, error) {
	return r.querySlots(ctx, selectSlotCols+` WHERE is_active = 1 ORDER BY day_of_week, time ASC`)
}

func (r *ScheduleSQLite) GetSlot(ctx context.Context, day string, slotID int) (models.ScheduleSlot, error) {
	row := r.db.QueryRowContext(ctx, selectSlotCols+` WHERE day_of_week = ? AND id = ?`, strings.ToLower(day), slotID)
	s, err := scanSlot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ScheduleSlot{}, ErrSlotNotFound
	}
	return s, err
}

func (r *ScheduleSQLite) Insert(ctx context.Context, slot models.ScheduleSlotCreate) (models.ScheduleSlot, error) {
	now := time.Now().UTC().Format(timestampLayout)
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO schedule_slots (day_of_week, time, program_name, block_type, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, strings.ToLower(slot.DayOfWeek), slot.Time, slot.ProgramName, slot.BlockType, slot.IsActive, now, now)
	if err != nil {
		return models.ScheduleSlot{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.ScheduleSlot{}, err
	}
	return r.GetSlot(ctx, slot.DayOfWeek, int(id))
}

func (r *ScheduleSQLite) Update(ctx context.Context, day string, slotID int, upd models.ScheduleSlotUpdate) (models.ScheduleSlot, error) {
	var (
		sets []string
		args []any
	)
	if upd.Time != nil {
		sets = append(sets, "time = ?")
		args = append(args, *upd.Time)
	}
	if upd.ProgramName != nil {
		sets = append(sets, "program_name = ?")
		args = append(args, *upd.ProgramName)
	}
	if upd.BlockType != nil {
		sets = append(sets, "block_type = ?")
		args = append(args, *upd.BlockType)
	}
	if upd.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *upd.IsActive)
	}
	if len(sets) == 0 {
		return r.GetSlot(ctx, day, slotID)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC().Format(timestampLayout))

	q := fmt.Sprintf(`UPDATE schedule_slots SET %s WHERE day_of_week = ? AND id = ?`, strings.Join(sets, ", "))
	args = append(args, strings.ToLower(day), slotID)

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return models.ScheduleSlot{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.ScheduleSlot{}, err
	}
	if n == 0 {
		return models.ScheduleSlot{}, ErrSlotNotFound
	}
	return r.GetSlot(ctx, day, slotID)
}

func (r *ScheduleSQLite) Delete(ctx context.Context, day string, slotID int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedule_slots WHERE day_of_week = ? AND id = ?`, strings.ToLower(day), slotID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSlotNotFound
	}
	return nil
}

// Replace wipes the table and reloads it, used on first boot seeding and on
// schedule reset.
func (r *ScheduleSQLite) Replace(ctx context.Context, slots []models.ScheduleSlotCreate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_slots`); err != nil {
		return err
	}
	now := time.Now().UTC().Format(timestampLayout)
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO schedule_slots (day_of_week, time, program_name, block_type, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range slots {
		if _, err := stmt.ExecContext(ctx, strings.ToLower(s.DayOfWeek), s.Time, s.ProgramName, s.BlockType, s.IsActive, now, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Count reports how many slots are stored, used to decide first-boot seeding.
func (r *ScheduleSQLite) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schedule_slots`).Scan(&n)
	return n, err
}
