package models

import "time"

// Faculty defines the faculty member model based on the 'faculty' table
type Faculty struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	Department    string    `json:"department" db:"department"`
	Designation   string    `json:"designation" db:"designation"`
	Phone         string    `json:"phone,omitempty" db:"phone"`
	Qualification string    `json:"qualification,omitempty" db:"qualification"`
	Experience    int       `json:"experience" db:"experience"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}
