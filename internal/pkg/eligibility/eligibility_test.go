package eligibility

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/placetrack/placetrack/internal/app/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestClassifyBoundaries(t *testing.T) {
	assert.Equal(t, models.StatusEligible, Classify(60, 60, 6.0, nil))
	assert.Equal(t, models.StatusIneligible, Classify(59.99, 60, 6.0, nil))
	assert.Equal(t, models.StatusIneligible, Classify(60, 59.99, 6.0, nil))
	assert.Equal(t, models.StatusIneligible, Classify(60, 60, 5.99, nil))
}

func TestClassifyCGPAOptional(t *testing.T) {
	// Absent CGPA never blocks eligibility
	assert.Equal(t, models.StatusEligible, Classify(70, 70, 7, nil))
	// Present CGPA below threshold blocks even with good scores
	assert.Equal(t, models.StatusIneligible, Classify(70, 70, 7, floatPtr(5.99)))
	assert.Equal(t, models.StatusEligible, Classify(70, 70, 7, floatPtr(6.0)))
}

func TestClassifyNonFiniteInputs(t *testing.T) {
	// NaN and infinities are in-domain and treated as 0
	assert.Equal(t, models.StatusIneligible, Classify(math.NaN(), 70, 7, nil))
	assert.Equal(t, models.StatusIneligible, Classify(70, math.Inf(1), 7, nil))
	assert.Equal(t, models.StatusIneligible, Classify(70, 70, 7, floatPtr(math.NaN())))
}

func TestClassifyMonotoneInTenth(t *testing.T) {
	// For fixed passing twelfth/ug, lowering tenth below 60 flips
	// eligible -> ineligible and never the reverse.
	previous := Classify(100, 70, 7, nil)
	for tenth := 100.0; tenth >= 0; tenth -= 0.5 {
		current := Classify(tenth, 70, 7, nil)
		if previous == models.StatusIneligible {
			assert.Equal(t, models.StatusIneligible, current,
				"eligibility regained at tenth=%.2f", tenth)
		}
		previous = current
	}
	assert.Equal(t, models.StatusIneligible, Classify(59.5, 70, 7, nil))
}

func TestClassifyStudent(t *testing.T) {
	details := models.AcademicDetails{
		TenthPercentage:   70,
		TwelfthPercentage: 70,
		UGPercentage:      7,
	}
	assert.Equal(t, models.StatusEligible, ClassifyStudent(details))

	details.UGPercentage = 5.5
	assert.Equal(t, models.StatusIneligible, ClassifyStudent(details))
}

func TestNormalizeTenScale(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"percentage rescaled", 75, 7.5},
		{"ten-scale unchanged", 7.5, 7.5},
		{"perfect score kept", 10.0, 10.0},
		{"just over ten divided", 10.01, 1.0},
		{"zero", 0, 0},
		{"nan to zero", math.NaN(), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, NormalizeTenScale(tc.in), 1e-9)
		})
	}
}
