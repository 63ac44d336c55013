package models

import "time"

// Observed schedule statuses. The column is free text; these are the values
// the application itself writes.
const (
	ScheduleStatusBooked    = "Agendado"
	ScheduleStatusDone      = "Concluído"
	ScheduleStatusCancelled = "Cancelado"
)

// Schedule is a booked class slot. StudentID goes NULL when the referenced
// student is removed, so reads must tolerate a missing student.
type Schedule struct {
	ID            string    `db:"id" json:"id"`
	StudentID     *string   `db:"student_id" json:"student_id"`
	ScheduledDate string    `db:"scheduled_date" json:"scheduled_date"`
	ScheduledTime string    `db:"scheduled_time" json:"scheduled_time"`
	Description   *string   `db:"description" json:"description"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// ScheduleStudent carries the joined student contact fields for display.
type ScheduleStudent struct {
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// ScheduleDetail is a schedule enriched with its student's contact data.
// Student is nil when the referenced student no longer exists.
type ScheduleDetail struct {
	Schedule
	Student *ScheduleStudent `json:"student"`
}

// ScheduleRow is the scan target for the joined queries.
type ScheduleRow struct {
	Schedule
	StudentName  *string `db:"student_name" json:"-"`
	StudentEmail *string `db:"student_email" json:"-"`
	StudentPhone *string `db:"student_phone" json:"-"`
}

// Detail folds the flat joined columns into the nested API shape.
func (r ScheduleRow) Detail() ScheduleDetail {
	detail := ScheduleDetail{Schedule: r.Schedule}
	if r.StudentName != nil {
		detail.Student = &ScheduleStudent{
			Name:  *r.StudentName,
			Email: r.StudentEmail,
			Phone: r.StudentPhone,
		}
	}
	return detail
}
