package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID              int64     `json:"id" db:"id" example:"1"`                                     // Unique identifier for the student record
	FirstName       string    `json:"first_name" db:"first_name" example:"Grace"`                 // Given name
	MiddleName      *string   `json:"middle_name" db:"middle_name" example:"Brewster"`            // Optional middle name, null when absent
	LastName        string    `json:"last_name" db:"last_name" example:"Hopper"`                  // Family name
	Age             int       `json:"age" db:"age" example:"21"`                                  // Age in years, 0-150
	DateOfBirth     string    `json:"date_of_birth" db:"date_of_birth" example:"2004-12-09"`      // Calendar date, YYYY-MM-DD
	CurrentLocation *string   `json:"current_location" db:"current_location" example:"Arlington"` // Optional free-text location, null when absent
	Phone           *string   `json:"phone" db:"phone" example:"+1 (555) 010-2000"`               // Optional phone number, null when absent
	Email           string    `json:"email" db:"email" example:"grace@example.com"`               // Contact email
	CreatedAt       time.Time `json:"created_at" db:"created_at"`                                 // Set once at insert
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`                                 // Refreshed on every successful update
}

// StudentInput carries the editable fields of a student record after they
// have passed validation. Optional fields are nil, never the empty string.
type StudentInput struct {
	FirstName       string
	MiddleName      *string
	LastName        string
	Age             int
	DateOfBirth     string // normalized YYYY-MM-DD
	CurrentLocation *string
	Phone           *string
	Email           string
}
