// Package errors provides standardized error handling for the search client and endpoint.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeEmptyKeyword   ErrorCode = "EMPTY_KEYWORD"
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	ErrCodeNoResults             ErrorCode = "NO_RESULTS"
	ErrCodeUpstreamAPIError      ErrorCode = "UPSTREAM_API_ERROR"
	ErrCodeUpstreamUnavailable   ErrorCode = "UPSTREAM_UNAVAILABLE"
	ErrCodeUpstreamFormatInvalid ErrorCode = "UPSTREAM_FORMAT_INVALID"
	ErrCodeProcessingFailed      ErrorCode = "PROCESSING_FAILED"

	ErrCodeTransportFailed ErrorCode = "TRANSPORT_FAILED"
	ErrCodePayloadInvalid  ErrorCode = "PAYLOAD_INVALID"
)

// User-facing messages. They are shown verbatim to the person searching.
const (
	MsgEmptyKeyword        = "검색어를 입력해주세요."
	MsgNoResults           = "검색 결과가 없습니다."
	MsgUpstreamFormat      = "API 응답 형식이 올바르지 않습니다."
	MsgUpstreamUnavailable = "네트워크 오류: API 서버에 연결할 수 없습니다."
	MsgTransportFailed     = "서버 연결 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
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

// ==========================
// 2. Error Constructors
// ==========================

// NewEmptyKeywordError is raised before any request is issued.
func NewEmptyKeywordError() *StandardError {
	return &StandardError{
		Code:      ErrCodeEmptyKeyword,
		Message:   MsgEmptyKeyword,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError creates a non-retryable request binding error.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "잘못된 요청입니다.",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoResultsError is returned when the upstream reports zero matches.
func NewNoResultsError(keyword string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNoResults,
		Message:   MsgNoResults,
		Details:   fmt.Sprintf("keyword: %s", keyword),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamAPIError wraps a non-success result code from the open API.
func NewUpstreamAPIError(resultCode, resultMsg string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamAPIError,
		Message:   fmt.Sprintf("API 오류: %s (코드: %s)", resultMsg, resultCode),
		Details:   fmt.Sprintf("resultCode: %s", resultCode),
		Retryable: false,
		Metadata:  map[string]interface{}{"resultCode": resultCode},
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamUnavailableError creates a retryable transport error towards the open API.
func NewUpstreamUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamUnavailable,
		Message:   MsgUpstreamUnavailable,
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamFormatError is returned when the open API answers without a response envelope.
func NewUpstreamFormatError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamFormatInvalid,
		Message:   MsgUpstreamFormat,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProcessingFailedError covers anything else that goes wrong while handling a search.
func NewProcessingFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProcessingFailed,
		Message:   fmt.Sprintf("처리 중 오류가 발생했습니다: %s", err.Error()),
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTransportFailedError is the single client-side fallback for undeclared failures.
func NewTransportFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTransportFailed,
		Message:   MsgTransportFailed,
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewPayloadInvalidError reports a response body that is not a usable search payload.
// The user sees the same message as for a transport failure.
func NewPayloadInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodePayloadInvalid,
		Message:   MsgTransportFailed,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// IsRetryableErrorCode reports whether a caller may try the same request again later.
func IsRetryableErrorCode(code ErrorCode) bool {
	switch code {
	case ErrCodeUpstreamUnavailable, ErrCodeTransportFailed:
		return true
	default:
		return false
	}
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "KEYWORD") || strings.Contains(codeStr, "REQUEST"):
		return "VALIDATION"
	case strings.HasPrefix(codeStr, "UPSTREAM") || code == ErrCodeNoResults:
		return "UPSTREAM"
	case strings.Contains(codeStr, "TRANSPORT") || strings.Contains(codeStr, "PAYLOAD"):
		return "TRANSPORT"
	default:
		return "OTHER"
	}
}
