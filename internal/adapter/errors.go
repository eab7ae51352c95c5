package adapter

import "errors"

// Sentinel errors returned for non-2xx responses when the transport option
// http_errors is enabled. Callers can match against them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrHTTPStatus wraps every other 4xx/5xx status.
	ErrHTTPStatus = errors.New("unexpected http status")
)

var (
	// ErrEmptyBaseURL is returned by client constructors for an empty base URL.
	ErrEmptyBaseURL = errors.New("empty base url")

	// ErrInvalidTransport is returned when a recognized transport option
	// cannot be applied (e.g. unreadable CA bundle or client certificate).
	ErrInvalidTransport = errors.New("invalid transport option")

	// ErrSigning is returned when an AWS request cannot be signed.
	ErrSigning = errors.New("request signing failed")
)
