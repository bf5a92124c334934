package dto

// CreateMentorRequest represents mentor account creation data
type CreateMentorRequest struct {
	Username   string  `json:"username" binding:"required,min=3"`
	Password   string  `json:"password" binding:"required,min=8"`
	Name       string  `json:"name" binding:"required"`
	Email      *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone      *string `json:"phone,omitempty"`
	Department *string `json:"department,omitempty"`
}

// UpdateMentorRequest represents mentor account update data
type UpdateMentorRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone      *string `json:"phone,omitempty"`
	Department *string `json:"department,omitempty"`
	IsActive   *bool   `json:"isActive,omitempty"`
}

// MentorListResponse represents a list of mentor accounts
type MentorListResponse struct {
	Mentors []UserResponse `json:"mentors"`
}
