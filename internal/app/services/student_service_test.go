package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/placetrack/placetrack/internal/app/models"
	"github.com/placetrack/placetrack/internal/app/models/dto"
	"github.com/placetrack/placetrack/internal/pkg/apperrors"
	"github.com/placetrack/placetrack/internal/pkg/filtering"
)

func eligibleAcademic() models.AcademicDetails {
	return models.AcademicDetails{
		TenthPercentage:   75,
		TwelfthPercentage: 80,
		UGPercentage:      7.5,
	}
}

func ineligibleAcademic() models.AcademicDetails {
	return models.AcademicDetails{
		TenthPercentage:   50,
		TwelfthPercentage: 80,
		UGPercentage:      7.5,
	}
}

func TestDeriveStatus(t *testing.T) {
	t.Run("placement record pins placed", func(t *testing.T) {
		student := &models.Student{
			Academic:        ineligibleAcademic(),
			PlacementRecord: &models.PlacementRecord{Company: "Acme"},
		}
		assert.Equal(t, models.StatusPlaced, deriveStatus(student, true))
		assert.Equal(t, models.StatusPlaced, deriveStatus(student, false))
	})

	t.Run("higher studies honored when eligible", func(t *testing.T) {
		student := &models.Student{Academic: eligibleAcademic()}
		assert.Equal(t, models.StatusHigherStudies, deriveStatus(student, true))
		assert.Equal(t, models.StatusEligible, deriveStatus(student, false))
	})

	t.Run("ineligible overrides higher studies", func(t *testing.T) {
		student := &models.Student{Academic: ineligibleAcademic()}
		assert.Equal(t, models.StatusIneligible, deriveStatus(student, true))
		assert.Equal(t, models.StatusIneligible, deriveStatus(student, false))
	})
}

func TestCheckStudentAccess(t *testing.T) {
	student := &models.Student{MentorID: 10}

	admin := filtering.Viewer{Role: models.RoleAdmin, ID: 1}
	assert.NoError(t, checkStudentAccess(admin, student))

	owner := filtering.Viewer{Role: models.RoleMentor, ID: 10}
	assert.NoError(t, checkStudentAccess(owner, student))

	other := filtering.Viewer{Role: models.RoleMentor, ID: 11}
	assert.ErrorIs(t, checkStudentAccess(other, student), apperrors.ErrPermissionDenied)
}

func TestNormalizeAcademic(t *testing.T) {
	cgpa := 82.0
	academic := normalizeAcademic(dto.AcademicDetailsPayload{
		TenthPercentage:   85,
		TwelfthPercentage: 88,
		UGPercentage:      75,
		CGPA:              &cgpa,
	})

	assert.Equal(t, 85.0, academic.TenthPercentage)
	assert.Equal(t, 88.0, academic.TwelfthPercentage)
	assert.Equal(t, 7.5, academic.UGPercentage)
	if assert.NotNil(t, academic.CGPA) {
		assert.Equal(t, 8.2, *academic.CGPA)
	}

	// Values already on the 10-point scale stay untouched
	academic = normalizeAcademic(dto.AcademicDetailsPayload{
		TenthPercentage:   85,
		TwelfthPercentage: 88,
		UGPercentage:      7.5,
	})
	assert.Equal(t, 7.5, academic.UGPercentage)
	assert.Nil(t, academic.CGPA)
}
