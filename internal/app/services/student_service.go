package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/placetrack/placetrack/internal/app/models"
	"github.com/placetrack/placetrack/internal/app/models/dto"
	"github.com/placetrack/placetrack/internal/app/repositories"
	"github.com/placetrack/placetrack/internal/pkg/apperrors"
	"github.com/placetrack/placetrack/internal/pkg/eligibility"
	"github.com/placetrack/placetrack/internal/pkg/filtering"
)

// StudentService handles student-related operations
type StudentService struct {
	studentRepo    *repositories.StudentRepository
	departmentRepo *repositories.DepartmentRepository
	userRepo       *repositories.UserRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	departmentRepo *repositories.DepartmentRepository,
	userRepo *repositories.UserRepository,
) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
	}
}

// List returns students visible to the viewer, narrowed by the dashboard
// filter query
func (s *StudentService) List(ctx context.Context, viewer filtering.Viewer, query models.FilterOptions) ([]*models.Student, error) {
	dbFilters := repositories.StudentListFilters{}
	if viewer.MyStudentsOnly && viewer.Role == models.RoleMentor {
		dbFilters.MentorID = viewer.ID
	}

	students, err := s.studentRepo.GetAll(ctx, dbFilters)
	if err != nil {
		return nil, err
	}

	departments, err := s.departmentRepo.GetAll(ctx, true)
	if err != nil {
		return nil, err
	}

	return filtering.Apply(students, query, viewer, models.ActiveDepartmentNames(departments)), nil
}

// GetByID retrieves a single student
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// Create creates a new student. The status is derived from the academic
// scores, never taken from the request.
func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	department, err := s.resolveDepartment(ctx, req.Department)
	if err != nil {
		return nil, err
	}

	if err := s.validateMentor(ctx, req.MentorID); err != nil {
		return nil, err
	}

	academic := normalizeAcademic(req.Academic)

	student := &models.Student{
		RollNumber:       strings.TrimSpace(req.RollNumber),
		StudentName:      strings.TrimSpace(req.StudentName),
		Email:            req.Email,
		PersonalEmail:    req.PersonalEmail,
		MobileNumber:     req.MobileNumber,
		Department:       department.Name,
		DepartmentID:     &department.ID,
		Section:          req.Section,
		MentorID:         req.MentorID,
		Gender:           req.Gender,
		DateOfBirth:      req.DateOfBirth,
		NumberOfBacklogs: req.NumberOfBacklogs,
		ResumeLink:       req.ResumeLink,
		PhotoURL:         req.PhotoURL,
		Academic:         academic,
		Status:           eligibility.ClassifyStudent(academic),
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Update updates a student's details and recomputes the status. A student
// with a placement record stays placed until the record itself is removed.
func (s *StudentService) Update(ctx context.Context, id int64, viewer filtering.Viewer, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkStudentAccess(viewer, student); err != nil {
		return nil, err
	}

	department, err := s.resolveDepartment(ctx, req.Department)
	if err != nil {
		return nil, err
	}

	if err := s.validateMentor(ctx, req.MentorID); err != nil {
		return nil, err
	}

	academic := normalizeAcademic(req.Academic)

	student.StudentName = strings.TrimSpace(req.StudentName)
	student.Email = req.Email
	student.PersonalEmail = req.PersonalEmail
	student.MobileNumber = req.MobileNumber
	student.Department = department.Name
	student.DepartmentID = &department.ID
	student.Section = req.Section
	student.MentorID = req.MentorID
	student.Gender = req.Gender
	student.DateOfBirth = req.DateOfBirth
	student.NumberOfBacklogs = req.NumberOfBacklogs
	student.ResumeLink = req.ResumeLink
	student.PhotoURL = req.PhotoURL
	student.Academic = academic
	student.Status = deriveStatus(student, req.HigherStudies)

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Delete removes a student and their placement record
func (s *StudentService) Delete(ctx context.Context, id int64, viewer filtering.Viewer) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := checkStudentAccess(viewer, student); err != nil {
		return err
	}

	return s.studentRepo.Delete(ctx, id)
}

func (s *StudentService) resolveDepartment(ctx context.Context, name string) (*models.Department, error) {
	department, err := s.departmentRepo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	return department, nil
}

func (s *StudentService) validateMentor(ctx context.Context, mentorID int64) error {
	mentor, err := s.userRepo.GetByID(ctx, mentorID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrMentorNotFound
		}
		return err
	}

	if mentor.Role != models.RoleMentor {
		return fmt.Errorf("%w: user %d is not a mentor", apperrors.ErrMentorNotFound, mentorID)
	}

	return nil
}

// checkStudentAccess allows admins everything and mentors only their own
// students
func checkStudentAccess(viewer filtering.Viewer, student *models.Student) error {
	if viewer.Role == models.RoleAdmin {
		return nil
	}
	if viewer.Role == models.RoleMentor && student.MentorID == viewer.ID {
		return nil
	}
	return apperrors.NewForbiddenError("students assigned to another mentor are not accessible")
}

// normalizeAcademic brings UG and CGPA scores onto the 10-point scale
func normalizeAcademic(payload dto.AcademicDetailsPayload) models.AcademicDetails {
	academic := models.AcademicDetails{
		TenthPercentage:   payload.TenthPercentage,
		TwelfthPercentage: payload.TwelfthPercentage,
		UGPercentage:      eligibility.NormalizeTenScale(payload.UGPercentage),
	}
	if payload.CGPA != nil {
		cgpa := eligibility.NormalizeTenScale(*payload.CGPA)
		academic.CGPA = &cgpa
	}
	return academic
}

// deriveStatus recomputes a student's status after an edit. An existing
// placement record pins the status to placed; the higher studies flag is
// honored for students who pass the eligibility bar.
func deriveStatus(student *models.Student, higherStudies bool) models.StudentStatus {
	if student.PlacementRecord != nil {
		return models.StatusPlaced
	}

	computed := eligibility.ClassifyStudent(student.Academic)
	if higherStudies && computed != models.StatusIneligible {
		return models.StatusHigherStudies
	}
	return computed
}
