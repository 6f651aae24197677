// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Reference-data errors. "Not found" propagates to the caller, never fatal.
	ErrCodeCareerNotFound    ErrorCode = "CAREER_NOT_FOUND"
	ErrCodeCollegeNotFound   ErrorCode = "COLLEGE_NOT_FOUND"
	ErrCodeMBTITypeNotFound  ErrorCode = "MBTI_TYPE_NOT_FOUND"
	ErrCodeCatalogEmpty      ErrorCode = "CATALOG_EMPTY"
	ErrCodeCatalogLoadFailed ErrorCode = "CATALOG_LOAD_FAILED"

	// Structurally invalid required inputs fail fast with these.
	ErrCodeInvalidTopN        ErrorCode = "INVALID_TOP_N"
	ErrCodeInvalidMatchWeight ErrorCode = "INVALID_MATCH_WEIGHTS"
	ErrCodeParseError         ErrorCode = "PARSE_ERROR"

	// Peripheral failures that degrade rather than abort.
	ErrCodeInvalidCurrency        ErrorCode = "INVALID_CURRENCY"
	ErrCodeReportPersistFailed    ErrorCode = "REPORT_PERSIST_FAILED"
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeAuditIndexFailed       ErrorCode = "AUDIT_INDEX_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Is lets errors.Is match on code against another *StandardError.
func (e *StandardError) Is(target error) bool {
	t, ok := target.(*StandardError)
	return ok && t.Code == e.Code
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// FromStandardError converts a StandardError into a throwable BPMN error.
func FromStandardError(err *StandardError, retries int) *BPMNError {
	return &BPMNError{
		Code:      string(err.Code),
		Message:   err.Message,
		Details:   err.Details,
		Retryable: err.Retryable,
		Retries:   retries,
	}
}

// ==========================
// 3. Error Constructors
// ==========================

// NewCareerNotFoundError creates a non-retryable reference lookup error.
func NewCareerNotFoundError(name string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCareerNotFound,
		Message:   "Career not found in reference catalog",
		Details:   name,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMBTITypeNotFoundError creates a non-retryable reference lookup error.
func NewMBTITypeNotFoundError(mbtiType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMBTITypeNotFound,
		Message:   "MBTI type missing from personality reference",
		Details:   mbtiType,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogEmptyError signals a structurally unusable reference catalog.
func NewCatalogEmptyError(catalog string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogEmpty,
		Message:   fmt.Sprintf("reference catalog %q is empty", catalog),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogLoadError wraps a backing-store failure; retryable since the
// store may recover.
func NewCatalogLoadError(catalog string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   fmt.Sprintf("failed to load reference catalog %q", catalog),
		Details:   cause.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidTopNError rejects a negative top-N request.
func NewInvalidTopNError(topN int) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidTopN,
		Message:   fmt.Sprintf("topN must be non-negative, got %d", topN),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewReportPersistError wraps a report history write failure.
func NewReportPersistError(cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportPersistFailed,
		Message:   "failed to persist generated report",
		Details:   cause.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
