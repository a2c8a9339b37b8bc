package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	msgs   []string
	fields []map[string]interface{}
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.msgs = append(l.msgs, msg)
	l.fields = append(l.fields, fields)
}

func TestUpstreamAPIError_Message(t *testing.T) {
	err := NewUpstreamAPIError("0099", "SERVICE KEY IS NOT REGISTERED")

	assert.Equal(t, ErrCodeUpstreamAPIError, err.Code)
	assert.Equal(t, "API 오류: SERVICE KEY IS NOT REGISTERED (코드: 0099)", err.Message)
	assert.False(t, err.Retryable)
}

func TestTransportAndPayloadErrors_ShareUserMessage(t *testing.T) {
	transport := NewTransportFailedError(fmt.Errorf("dial tcp: connection refused"))
	payload := NewPayloadInvalidError("invalid character '<'")

	assert.Equal(t, MsgTransportFailed, transport.Message)
	assert.Equal(t, MsgTransportFailed, payload.Message)
	assert.NotEqual(t, transport.Code, payload.Code)
}

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeEmptyKeyword, "VALIDATION"},
		{ErrCodeInvalidRequest, "VALIDATION"},
		{ErrCodeNoResults, "UPSTREAM"},
		{ErrCodeUpstreamUnavailable, "UPSTREAM"},
		{ErrCodeTransportFailed, "TRANSPORT"},
		{ErrCodePayloadInvalid, "TRANSPORT"},
		{ErrCodeProcessingFailed, "OTHER"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, GetErrorCategory(tt.code))
		})
	}
}

func TestIsRetryableErrorCode(t *testing.T) {
	assert.True(t, IsRetryableErrorCode(ErrCodeUpstreamUnavailable))
	assert.True(t, IsRetryableErrorCode(ErrCodeTransportFailed))
	assert.False(t, IsRetryableErrorCode(ErrCodeNoResults))
	assert.False(t, IsRetryableErrorCode(ErrCodeEmptyKeyword))
}

func TestErrorHandler_NormalizesWrappedStandardError(t *testing.T) {
	log := &recordingLogger{}
	h := NewErrorHandler(log)

	wrapped := fmt.Errorf("search: %w", NewNoResultsError("구로구"))
	stdErr := h.Handle(wrapped, map[string]interface{}{"keyword": "구로구"})

	assert.Equal(t, ErrCodeNoResults, stdErr.Code)
	assert.Equal(t, MsgNoResults, stdErr.Message)
	assert.Len(t, log.msgs, 1)
	assert.Equal(t, "구로구", log.fields[0]["keyword"])
	assert.Equal(t, "UPSTREAM", log.fields[0]["errorCategory"])
}

func TestErrorHandler_UnknownErrorBecomesProcessingFailed(t *testing.T) {
	h := NewErrorHandler(&recordingLogger{})

	stdErr := h.Handle(fmt.Errorf("boom"), nil)

	assert.Equal(t, ErrCodeProcessingFailed, stdErr.Code)
	assert.Equal(t, "처리 중 오류가 발생했습니다: boom", stdErr.Message)
}
