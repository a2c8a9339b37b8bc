// internal/common/errors/handler.go
package errors

import stderrors "errors"

// ErrorHandler normalizes and logs errors produced while serving a search.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle turns err into a StandardError and logs it with its category.
func (h *ErrorHandler) Handle(err error, fields map[string]interface{}) *StandardError {
	stdErr := Normalize(err)

	logFields := map[string]interface{}{
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"retryable":     stdErr.Retryable,
		"errorCategory": GetErrorCategory(stdErr.Code),
	}
	for k, v := range fields {
		logFields[k] = v
	}
	h.logger.Error("search failed", logFields)

	return stdErr
}

// Normalize ensures we always have a StandardError. Unknown errors become PROCESSING_FAILED.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return NewProcessingFailedError(err)
}
