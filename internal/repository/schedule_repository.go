package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/voll-fit/voll-api/internal/models"
)

// scheduleColumns selects a schedule joined with its student's contact data.
// Dates are rendered as YYYY-MM-DD so the API never leaks timestamps.
const scheduleColumns = `s.id, s.student_id, to_char(s.scheduled_date, 'YYYY-MM-DD') AS scheduled_date,
        s.scheduled_time, s.description, s.status, s.created_at,
        st.name AS student_name, st.email AS student_email, st.phone AS student_phone`

// ScheduleRepository manages persistence for class schedules.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository constructs a ScheduleRepository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// List returns all schedules ordered by date then time, each enriched with
// the referenced student. A schedule whose student was deleted still lists,
// with a nil student.
func (r *ScheduleRepository) List(ctx context.Context) ([]models.ScheduleDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM schedules s
        LEFT JOIN students st ON st.id = s.student_id
        ORDER BY s.scheduled_date ASC, s.scheduled_time ASC`, scheduleColumns)
	rows := make([]models.ScheduleRow, 0)
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	details := make([]models.ScheduleDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, row.Detail())
	}
	return details, nil
}

// FindByID fetches a single schedule with the student join populated.
func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*models.ScheduleDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM schedules s
        LEFT JOIN students st ON st.id = s.student_id
        WHERE s.id = $1`, scheduleColumns)
	var row models.ScheduleRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	detail := row.Detail()
	return &detail, nil
}

// Create inserts a schedule and returns it with the join populated.
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) (*models.ScheduleDetail, error) {
	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}
	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO schedules (id, student_id, scheduled_date, scheduled_time, description, status, created_at)
        VALUES (:id, :student_id, :scheduled_date, :scheduled_time, :description, :status, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, schedule); err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}
	return r.FindByID(ctx, schedule.ID)
}

// UpdateStatus mutates exactly the status field and returns the updated
// record. A missing id surfaces as sql.ErrNoRows from the re-read.
func (r *ScheduleRepository) UpdateStatus(ctx context.Context, id, status string) (*models.ScheduleDetail, error) {
	const query = `UPDATE schedules SET status = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		return nil, fmt.Errorf("update schedule status: %w", err)
	}
	return r.FindByID(ctx, id)
}

// Delete removes a schedule by id. Deleting an absent id is a no-op.
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM schedules WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	return nil
}

// CountByStatus groups schedules by their status value.
func (r *ScheduleRepository) CountByStatus(ctx context.Context) ([]models.StatusCount, error) {
	const query = `SELECT status, COUNT(*) AS count FROM schedules GROUP BY status ORDER BY status`
	counts := make([]models.StatusCount, 0)
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count schedules by status: %w", err)
	}
	return counts, nil
}

// UpcomingCounts buckets schedules from today onward by calendar date.
func (r *ScheduleRepository) UpcomingCounts(ctx context.Context) ([]models.DateCount, error) {
	const query = `SELECT to_char(scheduled_date, 'YYYY-MM-DD') AS date, COUNT(*) AS count
        FROM schedules WHERE scheduled_date >= CURRENT_DATE
        GROUP BY scheduled_date ORDER BY scheduled_date ASC`
	counts := make([]models.DateCount, 0)
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("upcoming schedule counts: %w", err)
	}
	return counts, nil
}
