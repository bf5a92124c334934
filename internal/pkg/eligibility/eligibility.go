// Package eligibility classifies a student's placement eligibility from
// academic scores. Classification is a total function: NaN or absent inputs
// are treated as 0, which drives the verdict toward ineligible.
package eligibility

import (
	"math"

	"github.com/placetrack/placetrack/internal/app/models"
)

// Placement participation thresholds.
const (
	MinTenth   = 60.0 // percentage
	MinTwelfth = 60.0 // percentage
	MinUG      = 6.0  // out of 10
	MinCGPA    = 6.0  // out of 10
)

// Classify returns StatusEligible or StatusIneligible for the given scores.
// tenth and twelfth are percentages (0-100); ug and cgpa are on a 0-10 scale.
// cgpa is optional; when present it must also clear the threshold.
func Classify(tenth, twelfth, ug float64, cgpa *float64) models.StudentStatus {
	tenth = sanitize(tenth)
	twelfth = sanitize(twelfth)
	ug = sanitize(ug)

	if tenth < MinTenth || twelfth < MinTwelfth || ug < MinUG {
		return models.StatusIneligible
	}
	if cgpa != nil && sanitize(*cgpa) < MinCGPA {
		return models.StatusIneligible
	}
	return models.StatusEligible
}

// ClassifyStudent classifies from a student's stored academic details.
func ClassifyStudent(a models.AcademicDetails) models.StudentStatus {
	return Classify(a.TenthPercentage, a.TwelfthPercentage, a.UGPercentage, a.CGPA)
}

// NormalizeTenScale converts a percentage-scale value (0-100) to the 0-10
// scale used for UG percentage and CGPA. The heuristic is value > 10 means
// percentage; a value of exactly 10.0 is taken as a perfect 10-scale score,
// which makes it indistinguishable from a raw 10% - a known limitation of the
// source data.
func NormalizeTenScale(value float64) float64 {
	value = sanitize(value)
	if value > 10 {
		return math.Round(value/10*100) / 100
	}
	return value
}

// sanitize maps NaN and infinities to 0 so classification never propagates
// non-finite values.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
