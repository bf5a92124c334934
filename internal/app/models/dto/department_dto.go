package dto

import "github.com/placetrack/placetrack/internal/app/models"

// DepartmentResponse represents basic department information
type DepartmentResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"isActive"`
}

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// UpdateDepartmentRequest represents department update data
type UpdateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code" binding:"required"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// SetDepartmentActiveRequest toggles a department's active flag. The pointer
// lets "false" pass the required check.
type SetDepartmentActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// DepartmentListResponse represents a list of departments
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

// FromDepartment converts a department model to its response representation
func FromDepartment(d *models.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Code:        d.Code,
		Description: d.Description,
		IsActive:    d.IsActive,
	}
}

// FromDepartments converts a slice of department models
func FromDepartments(departments []*models.Department) []DepartmentResponse {
	responses := make([]DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, FromDepartment(d))
	}
	return responses
}
