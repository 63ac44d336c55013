package models

import "time"

// Default status applied when a student is created without one.
const StudentStatusActive = "Ativo"

// Student represents a person enrolled with the studio.
// Email, phone and plan are nullable; absent values are stored as NULL.
type Student struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     *string   `db:"email" json:"email"`
	Phone     *string   `db:"phone" json:"phone"`
	Status    string    `db:"status" json:"status"`
	Plan      *string   `db:"plan" json:"plan"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
