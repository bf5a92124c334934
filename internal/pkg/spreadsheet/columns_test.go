package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveColumnsDeterministic(t *testing.T) {
	headers := []string{"Roll No", "NAME", "Email Address"}

	first := ResolveColumns(headers)
	second := ResolveColumns(headers)

	require.Len(t, first, 3)
	assert.Equal(t, "Roll No", first[FieldRollNumber])
	assert.Equal(t, "NAME", first[FieldStudentName])
	assert.Equal(t, "Email Address", first[FieldEmail])
	assert.Equal(t, first, second)
}

func TestResolveColumnsCaseAndWhitespace(t *testing.T) {
	columns := ResolveColumns([]string{"  roll number ", "sTuDeNt NaMe"})

	assert.Equal(t, "  roll number ", columns[FieldRollNumber])
	assert.Equal(t, "sTuDeNt NaMe", columns[FieldStudentName])
}

func TestResolveColumnsNoFuzzyMatch(t *testing.T) {
	columns := ResolveColumns([]string{"Roll Numbers", "Student", "E-mail"})

	assert.Empty(t, columns)
}

func TestResolveColumnsUGAndCGPASeparate(t *testing.T) {
	columns := ResolveColumns([]string{"UG Percentage", "CGPA"})

	assert.Equal(t, "UG Percentage", columns[FieldUGPercentage])
	assert.Equal(t, "CGPA", columns[FieldCGPA])
}

func TestResolveColumnsLoneCGPAFeedsUG(t *testing.T) {
	columns := ResolveColumns([]string{"CGPA"})

	assert.Equal(t, "CGPA", columns[FieldUGPercentage])
	_, ok := columns[FieldCGPA]
	assert.False(t, ok)
}

func TestResolveColumnsCGPAAndGPA(t *testing.T) {
	columns := ResolveColumns([]string{"CGPA", "GPA"})

	assert.Equal(t, "CGPA", columns[FieldUGPercentage])
	assert.Equal(t, "GPA", columns[FieldCGPA])
}

func TestResolveColumnsHeaderClaimedOnce(t *testing.T) {
	// "Mentor" must not be claimed again after "Mentor ID" resolves the
	// mentor field; the second header stays unclaimed rather than shadowing.
	columns := ResolveColumns([]string{"Mentor ID", "Mentor"})

	assert.Equal(t, "Mentor ID", columns[FieldMentorID])
	assert.Len(t, columns, 1)
}

func TestResolveColumnsAliasPriority(t *testing.T) {
	// Both aliases present: the earlier alias in the list wins.
	columns := ResolveColumns([]string{"Branch", "Department"})

	assert.Equal(t, "Department", columns[FieldDepartment])
}

func TestResolveColumnsFullTemplate(t *testing.T) {
	columns := ResolveColumns(templateHeaders)

	require.Len(t, columns, len(templateHeaders))
	for _, entry := range aliasTable {
		if entry.field == FieldPhotoURL {
			continue
		}
		_, ok := columns[entry.field]
		assert.True(t, ok, "field %s unmatched by template headers", entry.field)
	}
}
