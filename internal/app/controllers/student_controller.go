package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/placetrack/placetrack/internal/app/models/dto"
	"github.com/placetrack/placetrack/internal/app/services"
	"github.com/placetrack/placetrack/internal/middleware"
)

// StudentController handles student endpoints
type StudentController struct {
	studentService *services.StudentService
	importService  *services.ImportService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, importService *services.ImportService) *StudentController {
	return &StudentController{
		studentService: studentService,
		importService:  importService,
	}
}

// ListStudents returns students matching the dashboard filters
// @Summary List students
// @Description Returns students visible to the viewer, narrowed by the filter query. Empty filters mean no restriction.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param department query string false "Department name substring"
// @Param section query string false "Exact section"
// @Param company query string false "Company name substring (placed students only)"
// @Param year query string false "Placement year"
// @Param mentor query string false "Mentor ID (admin only)"
// @Param status query string false "Placement status"
// @Param search query string false "Search across name, roll number, department and company"
// @Param myStudentsOnly query bool false "Mentor scope toggle"
// @Param showInactiveDepartments query bool false "Include students of deactivated departments"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	query, ok := bindFilterOptions(ctx)
	if !ok {
		return
	}

	students, err := c.studentService.List(ctx, viewerFromContext(ctx), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := dto.FromStudents(students)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.StudentListResponse{
			Students: responses,
			PaginationInfo: dto.PaginationInfo{
				CurrentPage: 1,
				TotalPages:  1,
				PageSize:    len(responses),
				TotalItems:  len(responses),
			},
		},
		Timestamp: time.Now(),
	})
}

// GetStudent retrieves a student by ID
// @Summary Get student by ID
// @Description Retrieves a single student with their placement record
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student retrieved"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromStudent(student),
		Timestamp: time.Now(),
	})
}

// CreateStudent creates a new student
// @Summary Create a student
// @Description Creates a student. The placement status is computed from the academic scores.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Department or mentor not found"
// @Failure 409 {object} dto.ErrorResponse "Roll number already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromStudent(student),
		Timestamp: time.Now(),
	})
}

// UpdateStudent updates a student
// @Summary Update a student
// @Description Updates a student's details and recomputes the status. Mentors can only update their own students.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Student information"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Not the student's mentor"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.Update(ctx, id, viewerFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromStudent(student),
		Timestamp: time.Now(),
	})
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Description Removes a student and their placement record
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Student deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the student's mentor"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx, id, viewerFromContext(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Student deleted successfully"},
		Timestamp: time.Now(),
	})
}

// ImportStudents bulk-imports students from a spreadsheet
// @Summary Import students
// @Description Imports students from an uploaded .xlsx or .csv file. Malformed cells get defaults; duplicate roll numbers are skipped.
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Spreadsheet file (.xlsx, .xlsm or .csv)"
// @Success 200 {object} dto.APIResponse{data=dto.ImportResultResponse} "Import finished"
// @Failure 400 {object} dto.ErrorResponse "Unsupported file type or unreadable file"
// @Router /students/import [post]
func (c *StudentController) ImportStudents(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File upload required").
			WithDetails("Attach the spreadsheet as the 'file' form field")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	students, inserted, err := c.importService.ImportFile(ctx, fileHeader.Filename, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ImportResultResponse{
			ImportedCount: inserted,
			Students:      dto.FromStudents(students),
		},
		Timestamp: time.Now(),
	})
}

// DownloadTemplate serves the import template workbook
// @Summary Download import template
// @Description Returns an .xlsx template with the expected columns and example rows
// @Tags students
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary "Template workbook"
// @Router /students/import/template [get]
func (c *StudentController) DownloadTemplate(ctx *gin.Context) {
	workbook, err := c.importService.Template()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer workbook.Close()

	serveWorkbook(ctx, workbook, "student_import_template.xlsx")
}

// ExportStudents serves the filtered student list as a workbook
// @Summary Export students
// @Description Exports the students the current filters select as an .xlsx workbook
// @Tags students
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary "Student workbook"
// @Router /students/export [get]
func (c *StudentController) ExportStudents(ctx *gin.Context) {
	query, ok := bindFilterOptions(ctx)
	if !ok {
		return
	}

	workbook, err := c.importService.Export(ctx, viewerFromContext(ctx), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer workbook.Close()

	serveWorkbook(ctx, workbook, "students.xlsx")
}
