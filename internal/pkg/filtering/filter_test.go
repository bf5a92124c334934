package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placetrack/placetrack/internal/app/models"
)

func placedStudent(id int64, name, roll, dept, company string, pkg float64, date string) *models.Student {
	return &models.Student{
		ID:          id,
		RollNumber:  roll,
		StudentName: name,
		Department:  dept,
		Section:     "A",
		MentorID:    1,
		Status:      models.StatusPlaced,
		PlacementRecord: &models.PlacementRecord{
			StudentID:     id,
			Company:       company,
			Package:       pkg,
			PlacementDate: date,
		},
	}
}

func testStudents() []*models.Student {
	a := &models.Student{
		ID: 1, RollNumber: "CS001", StudentName: "Alice", Department: "Computer Science",
		Section: "A", MentorID: 1, Status: models.StatusEligible,
	}
	b := placedStudent(2, "Bob", "CS002", "Computer Science", "Acme", 10, "2024-03-01")
	c := &models.Student{
		ID: 3, RollNumber: "ME001", StudentName: "Carol", Department: "Mechanical Engineering",
		Section: "B", MentorID: 2, Status: models.StatusIneligible,
	}
	return []*models.Student{a, b, c}
}

func allActive() map[string]struct{} {
	return map[string]struct{}{
		"Computer Science":       {},
		"Mechanical Engineering": {},
	}
}

func adminView() Viewer {
	return Viewer{Role: models.RoleAdmin}
}

func TestEmptyQueryIsWildcard(t *testing.T) {
	students := testStudents()
	out := Apply(students, models.FilterOptions{}, adminView(), allActive())
	require.Len(t, out, len(students))
	for i := range students {
		assert.Same(t, students[i], out[i], "order must be preserved")
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	students := testStudents()
	query := models.FilterOptions{Department: "computer"}
	once := Apply(students, query, adminView(), allActive())
	twice := Apply(once, query, adminView(), allActive())
	assert.Equal(t, once, twice)
}

func TestCompanyFilterCaseInsensitive(t *testing.T) {
	students := testStudents()
	out := Apply(students, models.FilterOptions{Company: "acme"}, adminView(), allActive())
	require.Len(t, out, 1)
	assert.Equal(t, "Bob", out[0].StudentName)
}

func TestCompanyFilterSkipsUnplaced(t *testing.T) {
	students := testStudents()
	out := Apply(students, models.FilterOptions{Company: "zzz"}, adminView(), allActive())
	assert.Empty(t, out)
}

func TestYearFilter(t *testing.T) {
	students := testStudents()
	out := Apply(students, models.FilterOptions{Year: "2024"}, adminView(), allActive())
	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].ID)

	out = Apply(students, models.FilterOptions{Year: "2023"}, adminView(), allActive())
	assert.Empty(t, out)
}

func TestStatusAndSectionFilters(t *testing.T) {
	students := testStudents()

	out := Apply(students, models.FilterOptions{Status: "ineligible"}, adminView(), allActive())
	require.Len(t, out, 1)
	assert.Equal(t, "Carol", out[0].StudentName)

	out = Apply(students, models.FilterOptions{Section: "B"}, adminView(), allActive())
	require.Len(t, out, 1)
	assert.Equal(t, "Carol", out[0].StudentName)
}

func TestPackageRange(t *testing.T) {
	students := testStudents()

	out := Apply(students, models.FilterOptions{PackageRange: models.PackageRange{Min: 5}}, adminView(), allActive())
	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].ID)

	// Max below the only package excludes it
	out = Apply(students, models.FilterOptions{PackageRange: models.PackageRange{Max: 5}}, adminView(), allActive())
	assert.Empty(t, out)

	// Zero min and max means the predicate is inactive
	out = Apply(students, models.FilterOptions{PackageRange: models.PackageRange{}}, adminView(), allActive())
	assert.Len(t, out, 3)
}

func TestDateRangeRequiresBothEnds(t *testing.T) {
	students := testStudents()

	// Only one end set: predicate inactive
	out := Apply(students, models.FilterOptions{DateRange: models.DateRange{Start: "2024-01-01"}}, adminView(), allActive())
	assert.Len(t, out, 3)

	out = Apply(students, models.FilterOptions{DateRange: models.DateRange{Start: "2024-01-01", End: "2024-12-31"}}, adminView(), allActive())
	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].ID)

	out = Apply(students, models.FilterOptions{DateRange: models.DateRange{Start: "2023-01-01", End: "2023-12-31"}}, adminView(), allActive())
	assert.Empty(t, out)
}

func TestSearchAcrossFields(t *testing.T) {
	students := testStudents()

	for _, term := range []string{"alice", "cs001", "mechanical", "ACME"} {
		out := Apply(students, models.FilterOptions{Search: term}, adminView(), allActive())
		assert.NotEmpty(t, out, "search %q should match", term)
	}

	out := Apply(students, models.FilterOptions{Search: "nobody"}, adminView(), allActive())
	assert.Empty(t, out)
}

func TestMentorQueryAdminOnly(t *testing.T) {
	students := testStudents()

	out := Apply(students, models.FilterOptions{Mentor: "2"}, adminView(), allActive())
	require.Len(t, out, 1)
	assert.Equal(t, "Carol", out[0].StudentName)

	// Mentor viewers cannot use the mentor query field
	mentorViewer := Viewer{Role: models.RoleMentor, ID: 1}
	out = Apply(students, models.FilterOptions{Mentor: "2"}, mentorViewer, allActive())
	assert.Len(t, out, 3)
}

func TestMyStudentsOnlyScoping(t *testing.T) {
	students := testStudents()
	viewer := Viewer{Role: models.RoleMentor, ID: 1, MyStudentsOnly: true}
	out := Apply(students, models.FilterOptions{}, viewer, allActive())
	require.Len(t, out, 2)
	for _, s := range out {
		assert.Equal(t, int64(1), s.MentorID)
	}
}

func TestInactiveDepartmentSuppression(t *testing.T) {
	students := testStudents()
	active := map[string]struct{}{"Computer Science": {}}

	out := Apply(students, models.FilterOptions{}, adminView(), active)
	assert.Len(t, out, 2)

	viewer := adminView()
	viewer.ShowInactiveDepartments = true
	out = Apply(students, models.FilterOptions{}, viewer, active)
	assert.Len(t, out, 3)
}

func TestUnknownMentorDegradesToEmpty(t *testing.T) {
	students := testStudents()
	out := Apply(students, models.FilterOptions{Mentor: "999"}, adminView(), allActive())
	assert.Empty(t, out)
}
