package report

import "errors"

// Domain-specific errors for the report package.
var (
	// ErrGenerationInFlight rejects a second query on a session whose
	// previous generation has not finished. Interleaving would corrupt
	// turn ordering, so the caller must wait.
	ErrGenerationInFlight = errors.New("a report is already being generated for this session")
)

// User-facing messages for each upstream failure category, checked in
// fixed priority order: validation, timeout, connectivity, server-reported,
// generic fallback.
const (
	MsgEmptyQuery  = "Please enter a valid message."
	MsgTimeout     = "The request timed out. Please try again."
	MsgUnreachable = "Could not reach the AI engine. Please check your connection."
	MsgEngineError = "The AI engine reported an error."
	MsgGeneric     = "Something went wrong, please try again."
)
