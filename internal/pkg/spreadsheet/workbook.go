package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/placetrack/placetrack/internal/app/models"
)

// templateHeaders is the header row of the downloadable import template, one
// column per canonical field (photo excluded: photos are uploaded per
// student, not imported).
var templateHeaders = []string{
	"Roll Number", "Student Name", "Email", "Personal Email", "Mobile Number",
	"Department", "Section", "Gender", "Date of Birth", "Number of Backlogs",
	"Resume Link", "Mentor ID", "10th Percentage", "12th Percentage",
	"UG Percentage", "CGPA", "Status", "Company", "Package", "Placement Date",
}

// templateExamples are sample rows written into the import template.
var templateExamples = [][]interface{}{
	{"CS001", "John Doe", "john.doe@college.edu", "john.doe@gmail.com", "9876543210",
		"Computer Science", "A", "Male", "2000-01-15", 0,
		"https://example.com/resume.pdf", 2, 85.5, 88.2, 7.58, 7.58, "", "", "", ""},
	{"ME014", "Jane Roe", "jane.roe@college.edu", "", "9876501234",
		"Mechanical Engineering", "B", "Female", "2001-06-02", 1,
		"", 2, 72.0, 68.4, 6.9, "", "placed", "Acme Corp", 8.5, "2024-03-01"},
}

// ParseWorkbook decodes the first sheet of an .xlsx/.xlsm workbook into
// header-keyed rows. The first row is the header row.
func ParseWorkbook(r io.Reader) ([]string, []Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rowsFromCells(cells)
}

// ParseCSV decodes comma-separated data into header-keyed rows.
func ParseCSV(r io.Reader) ([]string, []Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are padded below
	cells, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return rowsFromCells(cells)
}

func rowsFromCells(cells [][]string) ([]string, []Row, error) {
	if len(cells) == 0 {
		return nil, nil, fmt.Errorf("sheet is empty")
	}

	headers := cells[0]
	rows := make([]Row, 0, len(cells)-1)
	for _, line := range cells[1:] {
		if isBlankRow(line) {
			continue
		}
		row := make(Row, len(headers))
		for i, header := range headers {
			if i < len(line) {
				row[header] = line[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

func isBlankRow(line []string) bool {
	for _, cell := range line {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// BuildTemplate creates the import template workbook: one header row with all
// canonical field names plus example rows.
func BuildTemplate() (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, header := range templateHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for r, example := range templateExamples {
		for c, value := range example {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// exportHeaders is the column order of the student export workbook.
var exportHeaders = []string{
	"Roll Number", "Student Name", "Email", "Personal Email", "Mobile Number",
	"Department", "Section", "Gender", "Date of Birth", "Number of Backlogs",
	"10th Percentage", "12th Percentage", "UG Percentage", "CGPA", "Status",
	"Company", "Package (LPA)", "Placement Date",
}

// ExportStudents flattens students into an export workbook, one row per
// student with placement columns populated for placed students.
func ExportStudents(students []*models.Student) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for r, s := range students {
		for c, value := range exportRow(s) {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func exportRow(s *models.Student) []interface{} {
	row := []interface{}{
		s.RollNumber,
		s.StudentName,
		s.Email,
		strOrEmpty(s.PersonalEmail),
		s.MobileNumber,
		s.Department,
		s.Section,
		strOrEmpty(s.Gender),
		strOrEmpty(s.DateOfBirth),
		intOrZero(s.NumberOfBacklogs),
		s.Academic.TenthPercentage,
		s.Academic.TwelfthPercentage,
		s.Academic.UGPercentage,
		floatOrEmpty(s.Academic.CGPA),
		string(s.Status),
	}
	if s.PlacementRecord != nil {
		row = append(row, s.PlacementRecord.Company, s.PlacementRecord.Package, s.PlacementRecord.PlacementDate)
	} else {
		row = append(row, "", "", "")
	}
	return row
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrEmpty(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
