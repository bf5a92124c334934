package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/placetrack/placetrack/internal/app/models"
	"github.com/placetrack/placetrack/internal/app/models/dto"
	"github.com/placetrack/placetrack/internal/app/repositories"
	"github.com/placetrack/placetrack/internal/pkg/apperrors"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	departmentRepo *repositories.DepartmentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
	}
}

// validateDepartment validates department data before database operations
func validateDepartment(name, code string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if !isValidDepartmentCode(code) {
		return fmt.Errorf("%w: code must be uppercase alphanumeric", apperrors.ErrValidationFailed)
	}

	return nil
}

// isValidDepartmentCode checks if a department code is valid
func isValidDepartmentCode(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}

	for _, char := range code {
		if !((char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9')) {
			return false
		}
	}

	return true
}

// List retrieves all departments, optionally including deactivated ones
func (s *DepartmentService) List(ctx context.Context, includeInactive bool) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx, includeInactive)
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// Create creates a new department
func (s *DepartmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	if err := validateDepartment(req.Name, req.Code); err != nil {
		return nil, err
	}

	department := &models.Department{
		Name:        strings.TrimSpace(req.Name),
		Code:        strings.TrimSpace(req.Code),
		Description: req.Description,
		IsActive:    true,
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

// Update updates an existing department
func (s *DepartmentService) Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	if err := validateDepartment(req.Name, req.Code); err != nil {
		return nil, err
	}

	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.departmentRepo.ExistsByNameOrCode(ctx, strings.TrimSpace(req.Name), strings.TrimSpace(req.Code), id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrDepartmentAlreadyExists,
			fmt.Sprintf("another department already uses name %q or code %q", strings.TrimSpace(req.Name), strings.TrimSpace(req.Code)))
	}

	department.Name = strings.TrimSpace(req.Name)
	department.Code = strings.TrimSpace(req.Code)
	department.Description = req.Description
	if req.IsActive != nil {
		department.IsActive = *req.IsActive
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

// SetActive activates or deactivates a department. Students of a
// deactivated department disappear from default dashboard views but keep
// their data.
func (s *DepartmentService) SetActive(ctx context.Context, id int64, active bool) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	department.IsActive = active
	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

// Delete removes a department without students
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		return err
	}

	hasStudents, err := s.departmentRepo.HasStudents(ctx, id)
	if err != nil {
		return err
	}
	if hasStudents {
		return apperrors.ErrDepartmentHasStudents
	}

	return s.departmentRepo.Delete(ctx, id)
}
