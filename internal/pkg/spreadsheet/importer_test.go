package spreadsheet

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placetrack/placetrack/internal/app/models"
)

func testImporter() *Importer {
	departments := []*models.Department{
		{ID: 1, Name: "Computer Science", Code: "CS", IsActive: true},
		{ID: 2, Name: "Mechanical Engineering", Code: "ME", IsActive: true},
	}
	mentors := []*models.User{
		{ID: 10, Username: "mentor1", Name: "Asha Nair", Role: models.RoleMentor},
		{ID: 11, Username: "mentor2", Name: "Ravi Kumar", Role: models.RoleMentor},
	}
	imp := NewImporter(departments, mentors)
	imp.now = func() time.Time {
		return time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	}
	return imp
}

func importOne(t *testing.T, imp *Importer, headers []string, row Row) *models.Student {
	t.Helper()
	students := imp.ImportRows([]Row{row}, headers)
	require.Len(t, students, 1)
	return students[0]
}

func TestImportNormalizesUGScale(t *testing.T) {
	imp := testImporter()
	headers := []string{"Roll Number", "UG Percentage"}

	percentage := importOne(t, imp, headers, Row{"Roll Number": "CS001", "UG Percentage": "75"})
	assert.Equal(t, 7.5, percentage.Academic.UGPercentage)

	alreadyScaled := importOne(t, imp, headers, Row{"Roll Number": "CS002", "UG Percentage": "7.5"})
	assert.Equal(t, 7.5, alreadyScaled.Academic.UGPercentage)
}

func TestImportSafeDefaults(t *testing.T) {
	imp := testImporter()
	headers := []string{"Student Name"}

	s := importOne(t, imp, headers, Row{"Student Name": "Blank Row"})

	assert.True(t, strings.HasPrefix(s.RollNumber, "IMP"), "generated roll number: %s", s.RollNumber)
	assert.Equal(t, "A", s.Section)
	assert.Equal(t, "Computer Science", s.Department)
	assert.Equal(t, int64(10), s.MentorID)
	assert.Equal(t, models.StatusIneligible, s.Status)
	assert.Nil(t, s.Academic.CGPA)
	assert.Nil(t, s.PlacementRecord)
}

func TestImportGeneratedRollNumbersUnique(t *testing.T) {
	imp := testImporter()
	headers := []string{"Student Name"}

	students := imp.ImportRows([]Row{
		{"Student Name": "One"},
		{"Student Name": "Two"},
	}, headers)

	require.Len(t, students, 2)
	assert.NotEqual(t, students[0].RollNumber, students[1].RollNumber)
}

func TestImportMalformedNumbersBecomeZero(t *testing.T) {
	imp := testImporter()
	headers := []string{"Roll Number", "10th Percentage", "12th Percentage", "UG Percentage"}

	s := importOne(t, imp, headers, Row{
		"Roll Number":     "CS003",
		"10th Percentage": "abc",
		"12th Percentage": "",
		"UG Percentage":   "n/a",
	})

	assert.Zero(t, s.Academic.TenthPercentage)
	assert.Zero(t, s.Academic.TwelfthPercentage)
	assert.Zero(t, s.Academic.UGPercentage)
	assert.Equal(t, models.StatusIneligible, s.Status)
}

func TestImportStatusOverrides(t *testing.T) {
	imp := testImporter()
	headers := []string{"Roll Number", "10th Percentage", "12th Percentage", "UG Percentage", "Status", "Company", "Package"}

	eligibleRow := Row{
		"Roll Number":     "CS004",
		"10th Percentage": "80",
		"12th Percentage": "82",
		"UG Percentage":   "8.1",
	}

	t.Run("higher studies honored when eligible", func(t *testing.T) {
		row := Row{"Status": "Higher Studies"}
		for k, v := range eligibleRow {
			row[k] = v
		}
		s := importOne(t, imp, headers, row)
		assert.Equal(t, models.StatusHigherStudies, s.Status)
	})

	t.Run("placed with record honored", func(t *testing.T) {
		row := Row{"Status": "placed", "Company": "Acme Corp", "Package": "8.5"}
		for k, v := range eligibleRow {
			row[k] = v
		}
		s := importOne(t, imp, headers, row)
		require.Equal(t, models.StatusPlaced, s.Status)
		require.NotNil(t, s.PlacementRecord)
		assert.Equal(t, "Acme Corp", s.PlacementRecord.Company)
		assert.Equal(t, 8.5, s.PlacementRecord.Package)
		assert.Equal(t, "CS004", s.PlacementRecord.RollNumber)
	})

	t.Run("placed without company degrades", func(t *testing.T) {
		row := Row{"Status": "placed"}
		for k, v := range eligibleRow {
			row[k] = v
		}
		s := importOne(t, imp, headers, row)
		assert.Equal(t, models.StatusEligible, s.Status)
		assert.Nil(t, s.PlacementRecord)
	})

	t.Run("ineligible marks never overridden", func(t *testing.T) {
		s := importOne(t, imp, headers, Row{
			"Roll Number":     "CS005",
			"10th Percentage": "50",
			"12th Percentage": "82",
			"UG Percentage":   "8.1",
			"Status":          "placed",
			"Company":         "Acme Corp",
			"Package":         "8.5",
		})
		assert.Equal(t, models.StatusIneligible, s.Status)
		assert.Nil(t, s.PlacementRecord)
	})
}

func TestImportPlacementDateDefaultsToToday(t *testing.T) {
	imp := testImporter()
	headers := []string{"Roll Number", "10th Percentage", "12th Percentage", "UG Percentage", "Status", "Company", "Package"}

	s := importOne(t, imp, headers, Row{
		"Roll Number":     "CS006",
		"10th Percentage": "80",
		"12th Percentage": "82",
		"UG Percentage":   "8.1",
		"Status":          "placed",
		"Company":         "Globex",
		"Package":         "12",
	})

	require.NotNil(t, s.PlacementRecord)
	assert.Equal(t, "2024-03-15", s.PlacementRecord.PlacementDate)
}

func TestImportDateOfBirthFormats(t *testing.T) {
	imp := testImporter()
	headers := []string{"Roll Number", "Date of Birth"}

	cases := map[string]string{
		"2000-01-15": "2000-01-15",
		"15/01/2000": "2000-01-15",
		"36526":      "2000-01-01", // spreadsheet date serial
		"not a date": "",
	}
	for raw, want := range cases {
		s := importOne(t, imp, headers, Row{"Roll Number": "CS007", "Date of Birth": raw})
		if want == "" {
			assert.Nil(t, s.DateOfBirth, "raw %q", raw)
			continue
		}
		require.NotNil(t, s.DateOfBirth, "raw %q", raw)
		assert.Equal(t, want, *s.DateOfBirth, "raw %q", raw)
	}
}

func TestImportDepartmentResolution(t *testing.T) {
	imp := testImporter()
	headers := []string{"Roll Number", "Department"}

	cases := map[string]string{
		"computer science": "Computer Science",
		"CSE":              "Computer Science",
		"mech":             "Mechanical Engineering",
		"Mechanical":       "Mechanical Engineering",
		"Fine Arts":        "Computer Science", // unknown falls back to first
	}
	for raw, want := range cases {
		s := importOne(t, imp, headers, Row{"Roll Number": "CS008", "Department": raw})
		assert.Equal(t, want, s.Department, "raw %q", raw)
	}
}

func TestImportMentorResolution(t *testing.T) {
	imp := testImporter()
	headers := []string{"Roll Number", "Mentor ID"}

	cases := map[string]int64{
		"11":         11,
		"mentor2":    11,
		"Ravi Kumar": 11,
		"999":        10, // unknown id falls back to first mentor
		"":           10,
	}
	for raw, want := range cases {
		s := importOne(t, imp, headers, Row{"Roll Number": "CS009", "Mentor ID": raw})
		assert.Equal(t, want, s.MentorID, "raw %q", raw)
	}
}

func TestImportPhotoColumnIgnored(t *testing.T) {
	imp := testImporter()
	headers := []string{"Roll Number", "Photo URL"}

	s := importOne(t, imp, headers, Row{"Roll Number": "CS010", "Photo URL": "https://example.com/p.jpg"})
	assert.Nil(t, s.PhotoURL)
}

func TestImportCGPANormalized(t *testing.T) {
	imp := testImporter()
	headers := []string{"Roll Number", "UG Percentage", "CGPA"}

	s := importOne(t, imp, headers, Row{"Roll Number": "CS011", "UG Percentage": "72", "CGPA": "68"})

	assert.Equal(t, 7.2, s.Academic.UGPercentage)
	require.NotNil(t, s.Academic.CGPA)
	assert.Equal(t, 6.8, *s.Academic.CGPA)
}
