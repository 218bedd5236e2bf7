package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrCandidateNotFound = errors.New("candidate not found")
)
