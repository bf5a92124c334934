package services

import (
	"context"

	"github.com/placetrack/placetrack/internal/app/models"
	"github.com/placetrack/placetrack/internal/app/repositories"
	"github.com/placetrack/placetrack/internal/pkg/analytics"
	"github.com/placetrack/placetrack/internal/pkg/filtering"
)

// ReportService computes dashboard aggregations over the filtered student
// population. Every report answers for exactly the students the viewer's
// current filters select.
type ReportService struct {
	studentRepo    *repositories.StudentRepository
	departmentRepo *repositories.DepartmentRepository
	userRepo       *repositories.UserRepository
}

// NewReportService creates a new report service instance
func NewReportService(
	studentRepo *repositories.StudentRepository,
	departmentRepo *repositories.DepartmentRepository,
	userRepo *repositories.UserRepository,
) *ReportService {
	return &ReportService{
		studentRepo:    studentRepo,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
	}
}

// snapshot loads the viewer's filtered student population once per report
func (s *ReportService) snapshot(ctx context.Context, viewer filtering.Viewer, query models.FilterOptions) ([]*models.Student, error) {
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

// KPIs returns the dashboard headline numbers
func (s *ReportService) KPIs(ctx context.Context, viewer filtering.Viewer, query models.FilterOptions) (*analytics.KPIData, error) {
	students, err := s.snapshot(ctx, viewer, query)
	if err != nil {
		return nil, err
	}

	kpis := analytics.CalculateKPIs(students)
	return &kpis, nil
}

// DepartmentBreakdown returns per-department placement statistics
func (s *ReportService) DepartmentBreakdown(ctx context.Context, viewer filtering.Viewer, query models.FilterOptions) ([]analytics.DepartmentStats, error) {
	students, err := s.snapshot(ctx, viewer, query)
	if err != nil {
		return nil, err
	}

	return analytics.DepartmentBreakdown(students), nil
}

// MonthlyPlacements returns the placements-over-time series
func (s *ReportService) MonthlyPlacements(ctx context.Context, viewer filtering.Viewer, query models.FilterOptions) ([]analytics.MonthlyPlacement, error) {
	students, err := s.snapshot(ctx, viewer, query)
	if err != nil {
		return nil, err
	}

	return analytics.MonthlyPlacements(students), nil
}

// TopCompanies returns the ten companies with the most placements
func (s *ReportService) TopCompanies(ctx context.Context, viewer filtering.Viewer, query models.FilterOptions) ([]analytics.ChartData, error) {
	students, err := s.snapshot(ctx, viewer, query)
	if err != nil {
		return nil, err
	}

	return analytics.CompanyWiseData(students), nil
}

// PackageDistribution returns placement counts across fixed package buckets
func (s *ReportService) PackageDistribution(ctx context.Context, viewer filtering.Viewer, query models.FilterOptions) ([]analytics.ChartData, error) {
	students, err := s.snapshot(ctx, viewer, query)
	if err != nil {
		return nil, err
	}

	return analytics.PackageDistribution(students), nil
}

// StatusDistribution returns student counts per placement status
func (s *ReportService) StatusDistribution(ctx context.Context, viewer filtering.Viewer, query models.FilterOptions) ([]analytics.ChartData, error) {
	students, err := s.snapshot(ctx, viewer, query)
	if err != nil {
		return nil, err
	}

	return analytics.StatusDistribution(students), nil
}

// MentorBreakdown returns per-mentor placement statistics
func (s *ReportService) MentorBreakdown(ctx context.Context, viewer filtering.Viewer, query models.FilterOptions) ([]analytics.MentorStats, error) {
	students, err := s.snapshot(ctx, viewer, query)
	if err != nil {
		return nil, err
	}

	mentors, err := s.userRepo.GetMentors(ctx)
	if err != nil {
		return nil, err
	}

	return analytics.MentorBreakdown(students, mentors), nil
}
