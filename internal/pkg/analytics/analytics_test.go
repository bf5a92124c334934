package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placetrack/placetrack/internal/app/models"
)

func placed(id int64, dept, company string, pkg float64, date string) *models.Student {
	return &models.Student{
		ID:         id,
		Department: dept,
		MentorID:   1,
		Status:     models.StatusPlaced,
		PlacementRecord: &models.PlacementRecord{
			StudentID:     id,
			Company:       company,
			Package:       pkg,
			PlacementDate: date,
		},
	}
}

func withStatus(id int64, dept string, status models.StudentStatus) *models.Student {
	return &models.Student{ID: id, Department: dept, MentorID: 1, Status: status}
}

func TestKPIsEmptySet(t *testing.T) {
	kpi := CalculateKPIs(nil)
	assert.Zero(t, kpi.TotalStudents)
	assert.Zero(t, kpi.AveragePackage)
	assert.Zero(t, kpi.TopPackage)
	assert.Zero(t, kpi.PlacementRate)
	assert.Empty(t, kpi.TopCompany)
}

func TestKPIsScenario(t *testing.T) {
	// A eligible, B placed at Acme for 10, C ineligible
	students := []*models.Student{
		withStatus(1, "CS", models.StatusEligible),
		placed(2, "CS", "Acme", 10, "2024-03-01"),
		withStatus(3, "CS", models.StatusIneligible),
	}

	kpi := CalculateKPIs(students)
	assert.Equal(t, 3, kpi.TotalStudents)
	assert.Equal(t, 1, kpi.TotalPlaced)
	assert.Equal(t, 1, kpi.TotalEligible)
	assert.Equal(t, 1, kpi.TotalIneligible)
	assert.Equal(t, 0, kpi.HigherStudies)
	assert.InDelta(t, 10.0, kpi.AveragePackage, 1e-9)
	assert.InDelta(t, 10.0, kpi.TopPackage, 1e-9)
	assert.Equal(t, "Acme", kpi.TopCompany)
	assert.InDelta(t, 33.33, kpi.PlacementRate, 1e-9)
}

func TestKPIStatusPartition(t *testing.T) {
	students := []*models.Student{
		placed(1, "CS", "Acme", 8, "2024-01-10"),
		placed(2, "CS", "Initech", 12, "2024-02-10"),
		withStatus(3, "CS", models.StatusEligible),
		withStatus(4, "ME", models.StatusHigherStudies),
		withStatus(5, "ME", models.StatusIneligible),
	}
	kpi := CalculateKPIs(students)
	assert.Equal(t, kpi.TotalStudents,
		kpi.TotalPlaced+kpi.TotalEligible+kpi.TotalIneligible+kpi.HigherStudies)
}

func TestAveragePackageBounds(t *testing.T) {
	students := []*models.Student{
		placed(1, "CS", "Acme", 4, "2024-01-10"),
		placed(2, "CS", "Acme", 20, "2024-01-11"),
		placed(3, "CS", "Initech", 9, "2024-01-12"),
	}
	kpi := CalculateKPIs(students)
	assert.GreaterOrEqual(t, kpi.AveragePackage, 4.0)
	assert.LessOrEqual(t, kpi.AveragePackage, 20.0)
	assert.InDelta(t, 11.0, kpi.AveragePackage, 1e-9)
	assert.Equal(t, "Acme", kpi.TopCompany)
}

func TestTopCompanyTieBreaksFirstEncountered(t *testing.T) {
	students := []*models.Student{
		placed(1, "CS", "Globex", 5, "2024-01-10"),
		placed(2, "CS", "Acme", 6, "2024-01-11"),
	}
	kpi := CalculateKPIs(students)
	assert.Equal(t, "Globex", kpi.TopCompany)
}

func TestDepartmentBreakdown(t *testing.T) {
	students := []*models.Student{
		placed(1, "Computer Science", "Acme", 10, "2024-03-01"),
		placed(2, "Computer Science", "Initech", 20, "2024-04-01"),
		withStatus(3, "Computer Science", models.StatusEligible),
		withStatus(4, "Mechanical Engineering", models.StatusIneligible),
	}

	stats := DepartmentBreakdown(students)
	require.Len(t, stats, 2)

	cs := stats[0]
	assert.Equal(t, "Computer Science", cs.Department)
	assert.Equal(t, 2, cs.Placed)
	assert.Equal(t, 1, cs.Eligible)
	assert.InDelta(t, 15.0, cs.AveragePackage, 1e-9)
	assert.InDelta(t, 20.0, cs.TopPackage, 1e-9)

	me := stats[1]
	assert.Equal(t, "Mechanical Engineering", me.Department)
	assert.Equal(t, 1, me.Ineligible)
	assert.Zero(t, me.AveragePackage)
}

func TestMonthlyPlacementsSortedAscending(t *testing.T) {
	students := []*models.Student{
		placed(1, "CS", "Acme", 10, "2024-03-15"),
		placed(2, "CS", "Acme", 20, "2024-01-10"),
		placed(3, "CS", "Initech", 30, "2024-03-01"),
		placed(4, "CS", "Initech", 5, "2023-12-25"),
	}

	monthly := MonthlyPlacements(students)
	require.Len(t, monthly, 3)
	assert.Equal(t, "Dec 2023", monthly[0].Month)
	assert.Equal(t, "Jan 2024", monthly[1].Month)
	assert.Equal(t, "Mar 2024", monthly[2].Month)
	assert.Equal(t, 2, monthly[2].Placed)
	assert.InDelta(t, 20.0, monthly[2].AveragePackage, 1e-9)
}

func TestMonthlySkipsUnparseableDates(t *testing.T) {
	students := []*models.Student{
		placed(1, "CS", "Acme", 10, "not-a-date"),
		placed(2, "CS", "Acme", 20, "2024-01-10"),
	}
	monthly := MonthlyPlacements(students)
	require.Len(t, monthly, 1)
	assert.Equal(t, "Jan 2024", monthly[0].Month)
}

func TestCompanyWiseTopTen(t *testing.T) {
	var students []*models.Student
	id := int64(1)
	// 12 companies, company i gets i placements
	for i := 1; i <= 12; i++ {
		for j := 0; j < i; j++ {
			students = append(students, placed(id, "CS", companyName(i), float64(i), "2024-01-10"))
			id++
		}
	}

	data := CompanyWiseData(students)
	require.Len(t, data, 10)
	assert.Equal(t, companyName(12), data[0].Name)
	assert.Equal(t, 12, data[0].Value)
	// The 2 lowest-count companies fall off
	for _, d := range data {
		assert.GreaterOrEqual(t, d.Value, 3)
	}
}

func companyName(i int) string {
	return string(rune('A'+i-1)) + " Corp"
}

func TestPackageDistributionBuckets(t *testing.T) {
	students := []*models.Student{
		placed(1, "CS", "A", 3, "2024-01-01"),
		placed(2, "CS", "B", 7, "2024-01-01"),
		placed(3, "CS", "C", 12, "2024-01-01"),
		placed(4, "CS", "D", 40, "2024-01-01"),
		placed(5, "CS", "E", 60, "2024-01-01"),
	}

	dist := PackageDistribution(students)
	require.Len(t, dist, 6)
	expected := []int{1, 1, 1, 0, 1, 1}
	for i, want := range expected {
		assert.Equal(t, want, dist[i].Value, "bucket %s", dist[i].Name)
	}
}

func TestPackageDistributionBoundaryValues(t *testing.T) {
	// Bucket edges are inclusive at the bottom, exclusive at the top
	students := []*models.Student{
		placed(1, "CS", "A", 5, "2024-01-01"),
		placed(2, "CS", "B", 50, "2024-01-01"),
	}
	dist := PackageDistribution(students)
	assert.Equal(t, 0, dist[0].Value)
	assert.Equal(t, 1, dist[1].Value)
	assert.Equal(t, 1, dist[5].Value)
}

func TestStatusDistributionLabels(t *testing.T) {
	students := []*models.Student{
		withStatus(1, "CS", models.StatusPlaced),
		withStatus(2, "CS", models.StatusPlaced),
		withStatus(3, "CS", models.StatusHigherStudies),
	}
	dist := StatusDistribution(students)
	require.Len(t, dist, 2)
	assert.Equal(t, "Placed", dist[0].Name)
	assert.Equal(t, 2, dist[0].Value)
	assert.Equal(t, "Higher Studies", dist[1].Name)
}

func TestMentorBreakdown(t *testing.T) {
	mentorA := &models.User{ID: 1, Name: "Mentor A", Role: models.RoleMentor}
	mentorB := &models.User{ID: 2, Name: "Mentor B", Role: models.RoleMentor}

	students := []*models.Student{
		placed(1, "CS", "Acme", 10, "2024-01-10"),
		withStatus(2, "CS", models.StatusEligible),
	}
	students[0].MentorID = 1
	students[1].MentorID = 1

	stats := MentorBreakdown(students, []*models.User{mentorA, mentorB})
	require.Len(t, stats, 2)
	assert.Equal(t, 2, stats[0].TotalStudents)
	assert.Equal(t, 1, stats[0].Placed)
	assert.InDelta(t, 50.0, stats[0].PlacementRate, 1e-9)
	assert.Zero(t, stats[1].TotalStudents)
	assert.Zero(t, stats[1].PlacementRate)
}
