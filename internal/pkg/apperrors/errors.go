package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameAlreadyUsed = errors.New("username already exists")
)

// Student errors
var (
	ErrStudentNotFound         = errors.New("student not found")
	ErrRollNumberAlreadyExists = errors.New("roll number already exists")
	ErrStudentNotPlaced        = errors.New("student has no placement record")
	ErrStudentAlreadyPlaced    = errors.New("student already has a placement record")
	ErrStudentNotEligible      = errors.New("student does not meet the eligibility criteria")
)

// Department errors
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department with this name or code already exists")
	ErrDepartmentHasStudents   = errors.New("department has enrolled students and cannot be deleted")
)

// Mentor errors
var (
	ErrMentorNotFound    = errors.New("mentor not found")
	ErrMentorHasStudents = errors.New("mentor has assigned students and cannot be deleted")
)

// Import errors
var (
	ErrUnsupportedFileType = errors.New("unsupported file type, expected .xlsx, .xlsm or .csv")
	ErrEmptyWorkbook       = errors.New("workbook contains no data rows")
)

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError pairs a sentinel with a request-specific message. The
// sentinel drives HTTP classification, the message surfaces as details.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
