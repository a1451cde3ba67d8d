package models

import "time"

// Course defines the course model based on the 'courses' table
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Code        string    `json:"code" db:"code"`
	Duration    string    `json:"duration" db:"duration"`
	Fees        float64   `json:"fees" db:"fees"`
	Description string    `json:"description,omitempty" db:"description"`
	Department  string    `json:"department,omitempty" db:"department"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
