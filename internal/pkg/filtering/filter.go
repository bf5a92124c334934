// Package filtering applies a multi-criteria query to a student collection.
// The filter is pure, deterministic and order-preserving; every empty or zero
// query field is a wildcard that matches all students.
package filtering

import (
	"strconv"
	"strings"
	"time"

	"github.com/placetrack/placetrack/internal/app/models"
)

// Viewer carries the caller identity and view toggles that scope a filter run
// but are not part of the query itself.
type Viewer struct {
	Role models.RoleType
	ID   int64
	// MyStudentsOnly restricts a mentor's view to their assigned students.
	MyStudentsOnly bool
	// ShowInactiveDepartments includes students whose department is inactive.
	ShowInactiveDepartments bool
}

// Apply filters students against the query and viewer scope. The input slice
// is never mutated; the result preserves input order. activeDepartments is the
// set of active department names used to suppress inactive departments.
func Apply(students []*models.Student, query models.FilterOptions, viewer Viewer, activeDepartments map[string]struct{}) []*models.Student {
	filtered := make([]*models.Student, 0, len(students))
	for _, s := range students {
		if matches(s, query, viewer, activeDepartments) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func matches(s *models.Student, q models.FilterOptions, viewer Viewer, activeDepartments map[string]struct{}) bool {
	if !viewer.ShowInactiveDepartments {
		if _, ok := activeDepartments[s.Department]; !ok {
			return false
		}
	}

	if viewer.Role == models.RoleMentor && viewer.MyStudentsOnly && s.MentorID != viewer.ID {
		return false
	}

	if q.Department != "" && !containsFold(s.Department, q.Department) {
		return false
	}

	if q.Section != "" && s.Section != q.Section {
		return false
	}

	if q.Company != "" {
		if s.PlacementRecord == nil || !containsFold(s.PlacementRecord.Company, q.Company) {
			return false
		}
	}

	if q.Year != "" {
		if s.PlacementRecord == nil || s.PlacementRecord.Year() != q.Year {
			return false
		}
	}

	// Mentor filter is an admin-only query field; mentors are scoped through
	// MyStudentsOnly instead.
	if q.Mentor != "" && viewer.Role == models.RoleAdmin {
		if mentorID(s) != q.Mentor {
			return false
		}
	}

	if q.Status != "" && string(s.Status) != q.Status {
		return false
	}

	if q.PackageRange.Min > 0 || q.PackageRange.Max > 0 {
		if s.PlacementRecord == nil {
			return false
		}
		pkg := s.PlacementRecord.Package
		if pkg < q.PackageRange.Min {
			return false
		}
		if q.PackageRange.Max > 0 && pkg > q.PackageRange.Max {
			return false
		}
	}

	if q.DateRange.Start != "" && q.DateRange.End != "" {
		if s.PlacementRecord == nil || !dateWithin(s.PlacementRecord.PlacementDate, q.DateRange.Start, q.DateRange.End) {
			return false
		}
	}

	if q.Search != "" && !matchesSearch(s, q.Search) {
		return false
	}

	return true
}

// matchesSearch reports whether the free-text term matches the student name,
// roll number, department or placement company, case-insensitively.
func matchesSearch(s *models.Student, term string) bool {
	if containsFold(s.StudentName, term) ||
		containsFold(s.RollNumber, term) ||
		containsFold(s.Department, term) {
		return true
	}
	return s.PlacementRecord != nil && containsFold(s.PlacementRecord.Company, term)
}

// dateWithin reports start <= date <= end for YYYY-MM-DD strings. Unparseable
// values never match.
func dateWithin(date, start, end string) bool {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		return false
	}
	to, err := time.Parse("2006-01-02", end)
	if err != nil {
		return false
	}
	return !d.Before(from) && !d.After(to)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func mentorID(s *models.Student) string {
	return strconv.FormatInt(s.MentorID, 10)
}
