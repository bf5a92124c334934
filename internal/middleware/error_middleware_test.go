package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placetrack/placetrack/internal/app/models/dto"
	"github.com/placetrack/placetrack/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (int, *dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleAPIError(c, err)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, &resp
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"mentor not found", apperrors.ErrMentorNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate roll number", apperrors.ErrRollNumberAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"already placed", apperrors.ErrStudentAlreadyPlaced, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"department in use", apperrors.ErrDepartmentHasStudents, http.StatusConflict, dto.ErrorCodeResourceInUse},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"account disabled", apperrors.ErrAccountDisabled, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"ineligible placement", apperrors.ErrStudentNotEligible, http.StatusUnprocessableEntity, dto.ErrorCodeResourceInvalid},
		{"unsupported file type", apperrors.ErrUnsupportedFileType, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown error", errors.New("kaboom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := handleError(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestHandleAPIError_InternalErrorHidesDetails(t *testing.T) {
	_, resp := handleError(t, errors.New("pq: column does not exist"))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Internal server error", resp.Error.Message)
	assert.Equal(t, dto.ErrorSeverityCritical, resp.Error.Severity)
}

func TestHandleAPIError_ForbiddenWithMessage(t *testing.T) {
	err := apperrors.NewForbiddenError("students assigned to another mentor are not accessible")
	status, resp := handleError(t, err)

	assert.Equal(t, http.StatusForbidden, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeForbidden, resp.Error.Code)
	assert.Equal(t, "students assigned to another mentor are not accessible", resp.Error.Details)
	assert.Equal(t, dto.ErrorSeverityError, resp.Error.Severity)
}

func TestHandleAPIError_WrappedSentinelKeepsClassification(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrDepartmentAlreadyExists,
		`another department already uses name "Physics" or code "PHY"`)
	status, resp := handleError(t, err)

	assert.Equal(t, http.StatusConflict, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, resp.Error.Code)
	assert.Equal(t, `another department already uses name "Physics" or code "PHY"`, resp.Error.Details)
}

func TestHandleAPIError_CustomErrorDetails(t *testing.T) {
	err := apperrors.NewBadRequestError("row 3 has no roll number")
	status, resp := handleError(t, err)

	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "row 3 has no roll number", resp.Error.Details)
}
