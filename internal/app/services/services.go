package services

import (
	"github.com/rs/zerolog"

	"github.com/placetrack/placetrack/internal/app/repositories"
	"github.com/placetrack/placetrack/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	StudentService    *StudentService
	PlacementService  *PlacementService
	DepartmentService *DepartmentService
	MentorService     *MentorService
	ReportService     *ReportService
	ImportService     *ImportService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, logger zerolog.Logger) *Services {
	departmentService := NewDepartmentService(repos.DepartmentRepository)
	studentService := NewStudentService(repos.StudentRepository, repos.DepartmentRepository, repos.UserRepository)

	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, jwtService, logger),
		StudentService:    studentService,
		PlacementService:  NewPlacementService(repos.StudentRepository, repos.PlacementRepository),
		DepartmentService: departmentService,
		MentorService:     NewMentorService(repos.UserRepository, repos.StudentRepository),
		ReportService:     NewReportService(repos.StudentRepository, repos.DepartmentRepository, repos.UserRepository),
		ImportService:     NewImportService(repos.StudentRepository, repos.DepartmentRepository, repos.UserRepository, logger),
	}
}
