package api

import "errors"

var (
	// ErrSession means an authenticated operation was attempted with no
	// token available locally. No network call has been made.
	ErrSession = errors.New("no active session")

	// ErrAuth means the server rejected the credentials or the token.
	ErrAuth = errors.New("authentication rejected")

	// ErrValidation means the server refused the submitted data.
	ErrValidation = errors.New("validation rejected")

	// ErrNetwork is a transport-level failure.
	ErrNetwork = errors.New("network failure")

	// ErrServer is a non-2xx response not otherwise classified.
	ErrServer = errors.New("server error")

	// ErrProtocol means a nominally successful response was missing an
	// expected field, e.g. no token after login.
	ErrProtocol = errors.New("malformed server response")
)
