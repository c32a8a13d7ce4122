// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger logs a failure with request context and renders the matching
// error page, so handlers report and respond in one call:
//
//	h.ErrLog.LogServerError(w, r, "list airlines failed", err, "Could not load airlines.", "/")
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger returns an ErrorLogger writing to logger (a no-op logger
// when nil).
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{Log: logger}
}

func requestFields(r *http.Request, err error) []zap.Field {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	return fields
}

// LogServerError logs msg at error level and renders a 500 page showing
// userMsg.
func (l *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	l.Log.Error(msg, requestFields(r, err)...)
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs msg at info level and renders a 400 page.
func (l *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	l.Log.Info(msg, requestFields(r, err)...)
	RenderBadRequest(w, r, userMsg, backURL)
}

// LogNotFound logs msg at info level and renders a 404 page.
func (l *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	l.Log.Info(msg, requestFields(r, err)...)
	RenderNotFound(w, r, userMsg, backURL)
}
