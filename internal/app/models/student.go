package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Course     string    `json:"course" db:"course"`
	Year       string    `json:"year" db:"year"`
	RollNumber string    `json:"rollNumber" db:"roll_number"`
	Phone      string    `json:"phone,omitempty" db:"phone"`
	Address    string    `json:"address,omitempty" db:"address"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
