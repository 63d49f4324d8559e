package util

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes surfaced to callers. They are stable and asserted on by clients.
const (
	CodeNotFound            = "NOT_FOUND"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeBadRequest          = "BAD_REQUEST"
	CodeUnsupportedRole     = "UNSUPPORTED_ROLE"
	CodeCourseNotFound      = "COURSE_NOT_FOUND"
	CodeSurveyDisabled      = "SURVEY_DISABLED"
	CodePeriodClosed        = "PERIOD_CLOSED"
	CodeInvalidAnswer       = "INVALID_ANSWER"
	CodeDuplicateSubmission = "DUPLICATE_SUBMISSION"
	CodeValidationFailed    = "VALIDATION_FAILED"
	CodeInternal            = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches another DomainError by code, so errors.Is works against the sentinels below.
func (e *DomainError) Is(target error) bool {
	var other *DomainError
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// Sentinels for errors.Is comparisons.
var (
	ErrNotFound            = NewDomainError(CodeNotFound, "not found", http.StatusNotFound, nil)
	ErrUnauthorized        = NewDomainError(CodeUnauthorized, "unauthorized", http.StatusUnauthorized, nil)
	ErrForbidden           = NewDomainError(CodeForbidden, "forbidden", http.StatusForbidden, nil)
	ErrBadRequest          = NewDomainError(CodeBadRequest, "bad request", http.StatusBadRequest, nil)
	ErrUnsupportedRole     = NewDomainError(CodeUnsupportedRole, "unsupported role", http.StatusBadRequest, nil)
	ErrCourseNotFound      = NewDomainError(CodeCourseNotFound, "course not found", http.StatusNotFound, nil)
	ErrSurveyDisabled      = NewDomainError(CodeSurveyDisabled, "survey disabled", http.StatusForbidden, nil)
	ErrPeriodClosed        = NewDomainError(CodePeriodClosed, "evaluation period closed", http.StatusForbidden, nil)
	ErrInvalidAnswer       = NewDomainError(CodeInvalidAnswer, "invalid answer", http.StatusBadRequest, nil)
	ErrDuplicateSubmission = NewDomainError(CodeDuplicateSubmission, "duplicate submission", http.StatusConflict, nil)
)

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError(CodeUnauthorized, message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError(CodeForbidden, message, http.StatusForbidden, nil)
}

func NewBadRequest(message string) error {
	return NewDomainError(CodeBadRequest, message, http.StatusBadRequest, nil)
}

func NewUnsupportedRole(role string) error {
	return NewDomainError(CodeUnsupportedRole, fmt.Sprintf("unsupported role %q", role), http.StatusBadRequest, nil)
}

func NewCourseNotFound(courseID string) error {
	return NewDomainError(CodeCourseNotFound, "course not found", http.StatusNotFound, map[string]any{"course_id": courseID})
}

func NewSurveyDisabled(courseID string) error {
	return NewDomainError(CodeSurveyDisabled, "the survey for this course is disabled", http.StatusForbidden, map[string]any{"course_id": courseID})
}

func NewPeriodClosed() error {
	return NewDomainError(CodePeriodClosed, "the evaluation period is closed", http.StatusForbidden, nil)
}

func NewInvalidAnswer(question string) error {
	return NewDomainError(CodeInvalidAnswer, "answers must be integers between 1 and 5", http.StatusBadRequest, map[string]any{"question": question})
}

func NewDuplicateSubmission() error {
	return NewDomainError(CodeDuplicateSubmission, "you already submitted an evaluation for this course", http.StatusConflict, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// CodeOf returns the error code carried by err, or "" for nil.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	return ToDomainError(err).Code
}
