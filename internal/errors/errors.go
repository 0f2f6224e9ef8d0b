// Package errors provides centralized error handling for questlog.
//
// This package defines sentinel errors used for programmatic error
// categorization throughout the engine. All error types can be checked
// using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrUnknownQuestKind indicates a quest declared a kind that is neither
	// linked nor quantitative. Callers must not retry; the input is malformed.
	ErrUnknownQuestKind = errors.New("unknown quest kind")

	// ErrWrongQuestKind indicates a quest was routed to the calculator for
	// the other kind. The dispatcher prevents this for well-formed input.
	ErrWrongQuestKind = errors.New("quest kind does not match calculator")

	// ErrInvalidTarget indicates a quantitative quest with a target count
	// that is zero or negative.
	ErrInvalidTarget = errors.New("target count must be positive")

	// ErrInvalidCountScope indicates a quantitative quest whose count scope
	// is not one of the recognized values.
	ErrInvalidCountScope = errors.New("invalid count scope")

	// ErrInvalidPeriod indicates a quantitative quest with a period length
	// that is zero or negative.
	ErrInvalidPeriod = errors.New("period length must be positive")

	// ErrGoalsUnavailable indicates the primary goal list could not be
	// fetched at all. Calculators convert this into a degraded
	// zero-progress result rather than propagating it.
	ErrGoalsUnavailable = errors.New("goal list unavailable")

	// ErrFetchTimeout indicates a collaborator fetch exceeded its deadline.
	// Treated identically to any other fetch failure: skip and continue.
	ErrFetchTimeout = errors.New("fetch timed out")

	// ErrConfigNil indicates a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidEngine indicates an invalid engine configuration value.
	ErrConfigInvalidEngine = errors.New("invalid engine configuration")

	// ErrConfigInvalidStats indicates an invalid statistics configuration value.
	ErrConfigInvalidStats = errors.New("invalid statistics configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrSnapshotNotFound indicates the snapshot file was not found.
	ErrSnapshotNotFound = errors.New("snapshot file not found")

	// ErrSnapshotInvalid indicates the snapshot file could not be parsed.
	ErrSnapshotInvalid = errors.New("snapshot file invalid")

	// ErrQuestNotFound indicates a quest ID was not present in the snapshot.
	ErrQuestNotFound = errors.New("quest not found")

	// ErrGoalNotFound indicates a goal ID was not present in the snapshot.
	ErrGoalNotFound = errors.New("goal not found")
)
