// Package model contains domain records passed between layers.
package model

// Session groups the candidates evaluated together in one interview round.
// Sessions are created by the administration flow and are read-only here.
type Session struct {
	ID          string
	Name        string
	Interviewer string
	Date        string // ISO date, e.g. "2026-03-14"
}

// Candidate is a person evaluated within exactly one session.
type Candidate struct {
	ID              string
	SessionID       string
	Name            string
	Email           string // optional
	Position        string // optional
	ExperienceYears int    // non-negative, 0 when unknown
}

// Score is a single measurement of one candidate on one metric.
// At most one Score exists per (candidate, metric) pair.
type Score struct {
	CandidateID string
	Metric      string
	Value       float64
}
