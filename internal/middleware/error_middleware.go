package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placetrack/placetrack/internal/app/models/dto"
	"github.com/placetrack/placetrack/internal/pkg/apperrors"
	"github.com/placetrack/placetrack/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Controllers call it
// with whatever the service layer returned.
func HandleAPIError(c *gin.Context, err error) {
	status, code, message := classifyError(err)

	errorDetail := dto.NewErrorDetail(code, message)
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		errorDetail = errorDetail.WithDetails(customErr.Message)
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		errorDetail = errorDetail.WithSeverity(dto.ErrorSeverityCritical)
		if gin.IsDebugging() {
			errorDetail = errorDetail.WithDebugInfo("%v", err)
		}
	}

	c.JSON(status, dto.NewErrorResponse(errorDetail))
}

func classifyError(err error) (int, dto.ErrorCode, string) {
	switch {
	case apperrors.Is(err, apperrors.ErrStudentNotFound,
		apperrors.ErrDepartmentNotFound,
		apperrors.ErrMentorNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrStudentNotPlaced):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, err.Error()

	case apperrors.Is(err, apperrors.ErrRollNumberAlreadyExists,
		apperrors.ErrDepartmentAlreadyExists,
		apperrors.ErrUsernameAlreadyUsed,
		apperrors.ErrStudentAlreadyPlaced):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, err.Error()

	case apperrors.Is(err, apperrors.ErrDepartmentHasStudents,
		apperrors.ErrMentorHasStudents):
		return http.StatusConflict, dto.ErrorCodeResourceInUse, err.Error()

	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"

	case apperrors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"

	case apperrors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"

	case apperrors.Is(err, apperrors.ErrAccountDisabled):
		return http.StatusForbidden, dto.ErrorCodeForbidden, "Account is disabled"

	case apperrors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"

	case apperrors.Is(err, apperrors.ErrStudentNotEligible):
		return http.StatusUnprocessableEntity, dto.ErrorCodeResourceInvalid, err.Error()

	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrInvalidPassword,
		apperrors.ErrUnsupportedFileType,
		apperrors.ErrEmptyWorkbook,
		apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error()

	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"
	}
}
