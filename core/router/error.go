package router

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/koreannum/core/handler"
)

var (
	ErrNoContextFactory = errors.New("no context factory provided")
	ErrNilHandler       = errors.New("nil handler")
	ErrInvalidPattern   = errors.New("route pattern must start with /")

	ErrNotFound         error = statusError{status: http.StatusNotFound, msg: "not found"}
	ErrMethodNotAllowed error = statusError{status: http.StatusMethodNotAllowed, msg: "method not allowed"}
	ErrNilResponse      error = statusError{status: http.StatusInternalServerError, msg: "nil response"}
)

type statusError struct {
	status int
	msg    string
}

func (e statusError) Error() string   { return e.msg }
func (e statusError) StatusCode() int { return e.status }

type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler writes the error as plain text.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}
	http.Error(ctx.ResponseWriter(), http.StatusText(status), status)
}

// PanicError lets error handlers detect recovered panics.
type PanicError interface {
	error
	Value() any
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string   { return fmt.Sprintf("panic: %v", e.value) }
func (e *panicError) Value() any      { return e.value }
func (e *panicError) Stack() []byte   { return e.stack }
func (e *panicError) StatusCode() int { return http.StatusInternalServerError }

type loggerFunc func(r *http.Request, msg string, attrs ...slog.Attr)

func nopLogger(*http.Request, string, ...slog.Attr) {}
