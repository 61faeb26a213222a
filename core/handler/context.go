package handler

import (
	"context"
	"net/http"
)

// Context defines the contract for request contexts passed to handlers.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// Param returns a path wildcard value, empty when absent.
	Param(key string) string
	SetValue(key, val any)
}
