package models

import "time"

// User defines the user model based on the 'users' table. Mentors are staff
// users responsible for a subset of students; the admin manages everything.
type User struct {
	ID         int64     `json:"id" db:"id" example:"1"`
	Username   string    `json:"username" db:"username" example:"mentor01"` // Unique, immutable after creation
	Password   string    `json:"-" db:"password"`                           // Hashed password (excluded from JSON)
	Role       RoleType  `json:"role" db:"role" example:"mentor"`
	Name       string    `json:"name" db:"name" example:"Jane Smith"`
	Email      *string   `json:"email,omitempty" db:"email"`
	Phone      *string   `json:"phone,omitempty" db:"phone"`
	Department *string   `json:"department,omitempty" db:"department"`
	IsActive   bool      `json:"isActive" db:"is_active" example:"true"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
