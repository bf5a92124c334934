// Package analytics computes reporting aggregates over a student collection,
// typically the output of the filter engine. All functions are pure and take
// fresh snapshots; results are computed from scratch on every call.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/placetrack/placetrack/internal/app/models"
)

// KPIData is the dashboard headline summary.
type KPIData struct {
	TotalStudents   int     `json:"totalStudents"`
	TotalPlaced     int     `json:"totalPlaced"`
	TotalEligible   int     `json:"totalEligible"`
	TotalIneligible int     `json:"totalIneligible"`
	HigherStudies   int     `json:"higherStudies"`
	AveragePackage  float64 `json:"averagePackage"`
	TopCompany      string  `json:"topCompany"`
	TopPackage      float64 `json:"topPackage"`
	PlacementRate   float64 `json:"placementRate"`
}

// DepartmentStats is the per-department breakdown.
type DepartmentStats struct {
	Department     string  `json:"department"`
	Placed         int     `json:"placed"`
	Eligible       int     `json:"eligible"`
	Ineligible     int     `json:"ineligible"`
	HigherStudies  int     `json:"higherStudies"`
	AveragePackage float64 `json:"averagePackage"`
	TopPackage     float64 `json:"topPackage"`
}

// MonthlyPlacement is one month's placement count and average package.
type MonthlyPlacement struct {
	Month          string  `json:"month"` // "Jan 2006" label
	Placed         int     `json:"placed"`
	AveragePackage float64 `json:"averagePackage"`
}

// ChartData is a generic name/value pair for chart rendering; Package carries
// the average package where relevant.
type ChartData struct {
	Name    string  `json:"name"`
	Value   int     `json:"value"`
	Package float64 `json:"package,omitempty"`
}

// MentorStats summarizes one mentor's assigned students.
type MentorStats struct {
	MentorID      int64   `json:"mentorId"`
	MentorName    string  `json:"mentorName"`
	TotalStudents int     `json:"totalStudents"`
	Placed        int     `json:"placed"`
	Eligible      int     `json:"eligible"`
	Ineligible    int     `json:"ineligible"`
	HigherStudies int     `json:"higherStudies"`
	PlacementRate float64 `json:"placementRate"`
}

const monthLabel = "Jan 2006"

// CalculateKPIs computes the headline summary for a student set.
func CalculateKPIs(students []*models.Student) KPIData {
	kpi := KPIData{TotalStudents: len(students)}
	if len(students) == 0 {
		return kpi
	}

	var packageSum float64
	companyCounts := make(map[string]int)
	var companyOrder []string

	for _, s := range students {
		switch s.Status {
		case models.StatusPlaced:
			kpi.TotalPlaced++
			pkg := recordPackage(s)
			packageSum += pkg
			if pkg > kpi.TopPackage {
				kpi.TopPackage = pkg
			}
			if s.PlacementRecord != nil && s.PlacementRecord.Company != "" {
				company := s.PlacementRecord.Company
				if _, seen := companyCounts[company]; !seen {
					companyOrder = append(companyOrder, company)
				}
				companyCounts[company]++
			}
		case models.StatusEligible:
			kpi.TotalEligible++
		case models.StatusIneligible:
			kpi.TotalIneligible++
		case models.StatusHigherStudies:
			kpi.HigherStudies++
		}
	}

	if kpi.TotalPlaced > 0 {
		kpi.AveragePackage = round2(packageSum / float64(kpi.TotalPlaced))
	}
	// Ties break toward the first company encountered in iteration order
	best := 0
	for _, company := range companyOrder {
		if companyCounts[company] > best {
			best = companyCounts[company]
			kpi.TopCompany = company
		}
	}
	kpi.PlacementRate = round2(float64(kpi.TotalPlaced) / float64(kpi.TotalStudents) * 100)
	return kpi
}

// DepartmentBreakdown groups students by department name and computes
// per-group status counts and package stats. Groups appear in first-encounter
// order.
func DepartmentBreakdown(students []*models.Student) []DepartmentStats {
	index := make(map[string]int)
	var stats []DepartmentStats
	sums := make(map[string]float64)

	for _, s := range students {
		i, ok := index[s.Department]
		if !ok {
			i = len(stats)
			index[s.Department] = i
			stats = append(stats, DepartmentStats{Department: s.Department})
		}
		switch s.Status {
		case models.StatusPlaced:
			stats[i].Placed++
			pkg := recordPackage(s)
			sums[s.Department] += pkg
			if pkg > stats[i].TopPackage {
				stats[i].TopPackage = pkg
			}
		case models.StatusEligible:
			stats[i].Eligible++
		case models.StatusIneligible:
			stats[i].Ineligible++
		case models.StatusHigherStudies:
			stats[i].HigherStudies++
		}
	}

	for i := range stats {
		if stats[i].Placed > 0 {
			stats[i].AveragePackage = round2(sums[stats[i].Department] / float64(stats[i].Placed))
		}
	}
	return stats
}

// MonthlyPlacements groups placed students by placement month, sorted
// ascending by date. Students whose placement date does not parse are skipped.
func MonthlyPlacements(students []*models.Student) []MonthlyPlacement {
	type bucket struct {
		when  time.Time
		count int
		sum   float64
	}
	buckets := make(map[string]*bucket)

	for _, s := range students {
		if s.Status != models.StatusPlaced || s.PlacementRecord == nil {
			continue
		}
		t, err := time.Parse("2006-01-02", s.PlacementRecord.PlacementDate)
		if err != nil {
			continue
		}
		label := t.Format(monthLabel)
		b, ok := buckets[label]
		if !ok {
			b = &bucket{when: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)}
			buckets[label] = b
		}
		b.count++
		b.sum += s.PlacementRecord.Package
	}

	result := make([]MonthlyPlacement, 0, len(buckets))
	order := make(map[string]time.Time, len(buckets))
	for label, b := range buckets {
		result = append(result, MonthlyPlacement{
			Month:          label,
			Placed:         b.count,
			AveragePackage: round2(b.sum / float64(b.count)),
		})
		order[label] = b.when
	}
	sort.Slice(result, func(i, j int) bool {
		return order[result[i].Month].Before(order[result[j].Month])
	})
	return result
}

// CompanyWiseData ranks companies by placed-student count, descending,
// truncated to the top 10.
func CompanyWiseData(students []*models.Student) []ChartData {
	type companyAgg struct {
		count int
		sum   float64
	}
	aggs := make(map[string]*companyAgg)
	var order []string

	for _, s := range students {
		if s.Status != models.StatusPlaced || s.PlacementRecord == nil || s.PlacementRecord.Company == "" {
			continue
		}
		company := s.PlacementRecord.Company
		a, ok := aggs[company]
		if !ok {
			a = &companyAgg{}
			aggs[company] = a
			order = append(order, company)
		}
		a.count++
		a.sum += s.PlacementRecord.Package
	}

	result := make([]ChartData, 0, len(order))
	for _, company := range order {
		a := aggs[company]
		result = append(result, ChartData{
			Name:    company,
			Value:   a.count,
			Package: round2(a.sum / float64(a.count)),
		})
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Value > result[j].Value })
	if len(result) > 10 {
		result = result[:10]
	}
	return result
}

// packageBuckets are the fixed LPA ranges of the package distribution chart.
// Max of 0 means unbounded.
var packageBuckets = []struct {
	label string
	min   float64
	max   float64
}{
	{"0-5 LPA", 0, 5},
	{"5-10 LPA", 5, 10},
	{"10-15 LPA", 10, 15},
	{"15-25 LPA", 15, 25},
	{"25-50 LPA", 25, 50},
	{"50+ LPA", 50, 0},
}

// PackageDistribution counts placed students per fixed package bucket,
// zero-count buckets included, in bucket order.
func PackageDistribution(students []*models.Student) []ChartData {
	result := make([]ChartData, len(packageBuckets))
	for i, b := range packageBuckets {
		result[i] = ChartData{Name: b.label}
	}
	for _, s := range students {
		if s.Status != models.StatusPlaced || s.PlacementRecord == nil {
			continue
		}
		pkg := s.PlacementRecord.Package
		for i, b := range packageBuckets {
			if pkg >= b.min && (b.max == 0 || pkg < b.max) {
				result[i].Value++
				break
			}
		}
	}
	return result
}

// StatusDistribution counts students per status, labeled with human-readable
// names, in first-encounter order.
func StatusDistribution(students []*models.Student) []ChartData {
	counts := make(map[models.StudentStatus]int)
	var order []models.StudentStatus
	for _, s := range students {
		if _, seen := counts[s.Status]; !seen {
			order = append(order, s.Status)
		}
		counts[s.Status]++
	}
	result := make([]ChartData, 0, len(order))
	for _, status := range order {
		result = append(result, ChartData{Name: status.Label(), Value: counts[status]})
	}
	return result
}

// MentorBreakdown computes per-mentor status counts and placement rate over
// each mentor's assigned students.
func MentorBreakdown(students []*models.Student, mentors []*models.User) []MentorStats {
	result := make([]MentorStats, 0, len(mentors))
	for _, mentor := range mentors {
		stats := MentorStats{MentorID: mentor.ID, MentorName: mentor.Name}
		for _, s := range students {
			if s.MentorID != mentor.ID {
				continue
			}
			stats.TotalStudents++
			switch s.Status {
			case models.StatusPlaced:
				stats.Placed++
			case models.StatusEligible:
				stats.Eligible++
			case models.StatusIneligible:
				stats.Ineligible++
			case models.StatusHigherStudies:
				stats.HigherStudies++
			}
		}
		if stats.TotalStudents > 0 {
			stats.PlacementRate = round2(float64(stats.Placed) / float64(stats.TotalStudents) * 100)
		}
		result = append(result, stats)
	}
	return result
}

func recordPackage(s *models.Student) float64 {
	if s.PlacementRecord == nil {
		return 0
	}
	return s.PlacementRecord.Package
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
