package db

import "errors"

var (
	// ErrNotFound is returned when a single-document lookup matches nothing.
	ErrNotFound = errors.New("document not found")

	// ErrNotConnected is returned while the store has no client yet, either
	// because the startup connect is still running or because it failed
	// before a client could be built.
	ErrNotConnected = errors.New("mongodb client is not connected")

	// ErrConnection wraps failures to reach the server at connect time.
	ErrConnection = errors.New("mongodb connection failed")
)
