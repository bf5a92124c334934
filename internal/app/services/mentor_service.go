package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/placetrack/placetrack/internal/app/models"
	"github.com/placetrack/placetrack/internal/app/models/dto"
	"github.com/placetrack/placetrack/internal/app/repositories"
	"github.com/placetrack/placetrack/internal/pkg/apperrors"
	"github.com/placetrack/placetrack/internal/pkg/auth"
)

// MentorService handles mentor account management
type MentorService struct {
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
}

// NewMentorService creates a new mentor service instance
func NewMentorService(userRepo *repositories.UserRepository, studentRepo *repositories.StudentRepository) *MentorService {
	return &MentorService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
	}
}

// List retrieves all mentor accounts
func (s *MentorService) List(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetMentors(ctx)
}

// GetByID retrieves a mentor account
func (s *MentorService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, err
	}

	if user.Role != models.RoleMentor {
		return nil, apperrors.ErrMentorNotFound
	}

	return user, nil
}

// Create creates a new mentor account
func (s *MentorService) Create(ctx context.Context, req *dto.CreateMentorRequest) (*models.User, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	mentor := &models.User{
		Username:   strings.ToLower(strings.TrimSpace(req.Username)),
		Password:   hashed,
		Role:       models.RoleMentor,
		Name:       strings.TrimSpace(req.Name),
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		IsActive:   true,
	}

	if err := s.userRepo.Create(ctx, mentor); err != nil {
		return nil, err
	}

	return mentor, nil
}

// Update updates a mentor account
func (s *MentorService) Update(ctx context.Context, id int64, req *dto.UpdateMentorRequest) (*models.User, error) {
	mentor, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mentor.Name = strings.TrimSpace(req.Name)
	mentor.Email = req.Email
	mentor.Phone = req.Phone
	mentor.Department = req.Department
	if req.IsActive != nil {
		mentor.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(ctx, mentor); err != nil {
		return nil, err
	}

	return mentor, nil
}

// Delete removes a mentor account with no assigned students
func (s *MentorService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.studentRepo.CountByMentor(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrMentorHasStudents
	}

	return s.userRepo.Delete(ctx, id)
}
