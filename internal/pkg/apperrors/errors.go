package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Course Errors
var (
	ErrCourseNotFound    = errors.New("course not found")
	ErrInvalidDateRange  = errors.New("end date should be after start date")
	ErrInvalidCourseData = errors.New("invalid course data")
	ErrInvalidCourseID   = errors.New("invalid course ID")
)

// Student Errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrInvalidStudentIDs  = errors.New("invalid student IDs")
	ErrInvalidStudentData = errors.New("invalid student data")
)

// Participant Errors
var (
	ErrParticipantNotFound = errors.New("student is not assigned to this course")
)

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

// IsNotFound reports whether err is any of the not-found errors.
func IsNotFound(err error) bool {
	return Is(err, ErrCourseNotFound, ErrStudentNotFound, ErrParticipantNotFound)
}

// IsValidation reports whether err should be answered with 400.
func IsValidation(err error) bool {
	return Is(err, ErrValidationFailed,
		ErrInvalidDateRange,
		ErrInvalidCourseData,
		ErrInvalidCourseID,
		ErrInvalidStudentIDs,
		ErrInvalidStudentData,
	)
}
