package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

type (
	// NotFoundError indicates a resource was not found. A missing design
	// project is a normal negative result, not a fault.
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// UpstreamError indicates the chat-completion provider failed. The raw
	// cause is kept for server-side logging only and must never reach a
	// client response.
	UpstreamError struct {
		Message string
		Cause   error
	}
)

func (e *NotFoundError) Error() string   { return e.Message }
func (e *ValidationError) Error() string { return e.Message }
func (e *UpstreamError) Error() string   { return e.Message }

func (e *NotFoundError) StatusCode() int   { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }
func (e *UpstreamError) StatusCode() int   { return http.StatusInternalServerError }

// Unwrap exposes the provider cause to errors.Is/As on logging paths.
func (e *UpstreamError) Unwrap() error { return e.Cause }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrUpstream   = errors.New("upstream provider failed")
)

// Is implementations let errors.Is() match typed errors against the sentinels.
func (e *NotFoundError) Is(target error) bool   { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
func (e *UpstreamError) Is(target error) bool   { return target == ErrUpstream }
