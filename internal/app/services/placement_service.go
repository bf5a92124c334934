package services

import (
	"context"

	"github.com/placetrack/placetrack/internal/app/models"
	"github.com/placetrack/placetrack/internal/app/models/dto"
	"github.com/placetrack/placetrack/internal/app/repositories"
	"github.com/placetrack/placetrack/internal/pkg/apperrors"
	"github.com/placetrack/placetrack/internal/pkg/eligibility"
	"github.com/placetrack/placetrack/internal/pkg/filtering"
)

// PlacementService manages the one placement record a student can hold.
// Every mutation keeps the student's status in step with the record: placed
// exactly when a record exists.
type PlacementService struct {
	studentRepo   *repositories.StudentRepository
	placementRepo *repositories.PlacementRepository
}

// NewPlacementService creates a new placement service instance
func NewPlacementService(studentRepo *repositories.StudentRepository, placementRepo *repositories.PlacementRepository) *PlacementService {
	return &PlacementService{
		studentRepo:   studentRepo,
		placementRepo: placementRepo,
	}
}

// Create records a placement for a student and marks them placed
func (s *PlacementService) Create(ctx context.Context, studentID int64, viewer filtering.Viewer, req *dto.PlacementRequest) (*models.PlacementRecord, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if err := checkStudentAccess(viewer, student); err != nil {
		return nil, err
	}

	if student.PlacementRecord != nil {
		return nil, apperrors.ErrStudentAlreadyPlaced
	}

	if student.Status == models.StatusIneligible {
		return nil, apperrors.ErrStudentNotEligible
	}

	record := &models.PlacementRecord{
		StudentID:     student.ID,
		StudentName:   student.StudentName,
		RollNumber:    student.RollNumber,
		Department:    student.Department,
		MentorID:      student.MentorID,
		Company:       req.Company,
		Package:       req.Package,
		PlacementDate: req.PlacementDate,
	}

	if err := s.placementRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	if err := s.studentRepo.UpdateStatus(ctx, student.ID, models.StatusPlaced); err != nil {
		return nil, err
	}

	return record, nil
}

// Update rewrites an existing placement record
func (s *PlacementService) Update(ctx context.Context, studentID int64, viewer filtering.Viewer, req *dto.PlacementRequest) (*models.PlacementRecord, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if err := checkStudentAccess(viewer, student); err != nil {
		return nil, err
	}

	record := student.PlacementRecord
	if record == nil {
		return nil, apperrors.ErrStudentNotPlaced
	}

	record.Company = req.Company
	record.Package = req.Package
	record.PlacementDate = req.PlacementDate

	if err := s.placementRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// Delete removes a student's placement record and recomputes their status
// from the academic scores
func (s *PlacementService) Delete(ctx context.Context, studentID int64, viewer filtering.Viewer) error {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return err
	}

	if err := checkStudentAccess(viewer, student); err != nil {
		return err
	}

	if student.PlacementRecord == nil {
		return apperrors.ErrStudentNotPlaced
	}

	if err := s.placementRepo.DeleteByStudentID(ctx, studentID); err != nil {
		return err
	}

	return s.studentRepo.UpdateStatus(ctx, studentID, eligibility.ClassifyStudent(student.Academic))
}
