package core

import "errors"

var (
	// ErrTutorNotFound is returned when no tutor matches the requested id.
	ErrTutorNotFound = errors.New("tutor not found")

	// ErrInvalidID is returned for identifiers that are not 24-character hex ObjectIDs.
	ErrInvalidID = errors.New("invalid id")
)
