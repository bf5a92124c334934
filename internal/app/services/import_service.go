package services

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/placetrack/placetrack/internal/app/models"
	"github.com/placetrack/placetrack/internal/app/repositories"
	"github.com/placetrack/placetrack/internal/pkg/apperrors"
	"github.com/placetrack/placetrack/internal/pkg/filtering"
	"github.com/placetrack/placetrack/internal/pkg/spreadsheet"
)

// ImportService orchestrates bulk spreadsheet imports and exports
type ImportService struct {
	studentRepo    *repositories.StudentRepository
	departmentRepo *repositories.DepartmentRepository
	userRepo       *repositories.UserRepository
	logger         zerolog.Logger
}

// NewImportService creates a new import service instance
func NewImportService(
	studentRepo *repositories.StudentRepository,
	departmentRepo *repositories.DepartmentRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *ImportService {
	return &ImportService{
		studentRepo:    studentRepo,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// ImportFile parses an uploaded spreadsheet and inserts the students it
// contains. Returns the inserted students and how many rows made it in.
func (s *ImportService) ImportFile(ctx context.Context, filename string, file io.Reader) ([]*models.Student, int, error) {
	var (
		headers []string
		rows    []spreadsheet.Row
		err     error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		headers, rows, err = spreadsheet.ParseWorkbook(file)
	case ".csv":
		headers, rows, err = spreadsheet.ParseCSV(file)
	default:
		return nil, 0, apperrors.ErrUnsupportedFileType
	}
	if err != nil {
		return nil, 0, apperrors.NewBadRequestError(err.Error())
	}
	if len(rows) == 0 {
		return nil, 0, apperrors.ErrEmptyWorkbook
	}

	departments, err := s.departmentRepo.GetAll(ctx, false)
	if err != nil {
		return nil, 0, err
	}

	mentors, err := s.userRepo.GetMentors(ctx)
	if err != nil {
		return nil, 0, err
	}

	students, err := buildImportStudents(departments, mentors, headers, rows)
	if err != nil {
		return nil, 0, err
	}

	inserted, err := s.studentRepo.BulkCreate(ctx, students)
	if err != nil {
		return nil, 0, err
	}

	s.logger.Info().
		Str("file", filename).
		Int("rows", len(rows)).
		Int("inserted", inserted).
		Msg("Student import finished")

	return students, inserted, nil
}

// buildImportStudents turns parsed rows into insertable students. Rows
// without a mentor column fall back to the first mentor account, so the
// import is rejected outright when none exist rather than producing rows
// that violate the mentor foreign key.
func buildImportStudents(departments []*models.Department, mentors []*models.User, headers []string, rows []spreadsheet.Row) ([]*models.Student, error) {
	if len(mentors) == 0 {
		return nil, apperrors.NewBadRequestError("no mentor accounts exist to assign imported students to")
	}

	importer := spreadsheet.NewImporter(departments, mentors)
	students := importer.ImportRows(rows, headers)

	departmentIDs := make(map[string]int64, len(departments))
	for _, d := range departments {
		departmentIDs[d.Name] = d.ID
	}
	for _, student := range students {
		if id, ok := departmentIDs[student.Department]; ok {
			student.DepartmentID = &id
		}
	}

	return students, nil
}

// Template builds the downloadable import template workbook
func (s *ImportService) Template() (*excelize.File, error) {
	return spreadsheet.BuildTemplate()
}

// Export builds a workbook of the students the viewer's filters select
func (s *ImportService) Export(ctx context.Context, viewer filtering.Viewer, query models.FilterOptions) (*excelize.File, error) {
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

	filtered := filtering.Apply(students, query, viewer, models.ActiveDepartmentNames(departments))
	return spreadsheet.ExportStudents(filtered)
}
