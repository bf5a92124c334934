package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placetrack/placetrack/internal/app/models"
	"github.com/placetrack/placetrack/internal/pkg/apperrors"
	"github.com/placetrack/placetrack/internal/pkg/spreadsheet"
)

func importRow(values map[string]string) spreadsheet.Row {
	row := spreadsheet.Row{}
	for k, v := range values {
		row[k] = v
	}
	return row
}

func TestImportFileRejectsUnknownExtension(t *testing.T) {
	svc := &ImportService{}

	_, _, err := svc.ImportFile(context.Background(), "students.xls", strings.NewReader(""))
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)

	_, _, err = svc.ImportFile(context.Background(), "students.pdf", strings.NewReader(""))
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
}

func TestImportFileRejectsHeaderOnlyCSV(t *testing.T) {
	svc := &ImportService{}

	_, _, err := svc.ImportFile(context.Background(), "students.csv", strings.NewReader("Roll Number,Student Name\n"))
	assert.ErrorIs(t, err, apperrors.ErrEmptyWorkbook)
}

func TestBuildImportStudentsRequiresMentorAccount(t *testing.T) {
	headers := []string{"Roll Number", "Student Name"}
	rows := []spreadsheet.Row{importRow(map[string]string{
		"Roll Number":  "21CS001",
		"Student Name": "Asha Rao",
	})}

	_, err := buildImportStudents(nil, nil, headers, rows)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestBuildImportStudentsLinksDepartmentIDs(t *testing.T) {
	departments := []*models.Department{
		{ID: 3, Name: "Computer Science", Code: "CS", IsActive: true},
	}
	mentors := []*models.User{
		{ID: 9, Username: "mentor01", Name: "Mentor One", Role: models.RoleMentor, IsActive: true},
	}
	headers := []string{"Roll Number", "Student Name", "Department"}
	rows := []spreadsheet.Row{importRow(map[string]string{
		"Roll Number":  "21CS001",
		"Student Name": "Asha Rao",
		"Department":   "Computer Science",
	})}

	students, err := buildImportStudents(departments, mentors, headers, rows)
	require.NoError(t, err)
	require.Len(t, students, 1)

	require.NotNil(t, students[0].DepartmentID)
	assert.Equal(t, int64(3), *students[0].DepartmentID)
	assert.Equal(t, int64(9), students[0].MentorID)
}
