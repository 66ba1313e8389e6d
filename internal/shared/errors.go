package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Ordering engine errors.
	//
	// ErrAffinityViolation and ErrInvalidPosition signal caller misuse and are
	// never retryable. ErrStoreUnavailable wraps transient database failures;
	// retrying is the caller's decision.
	ErrAffinityViolation = fmt.Errorf("playlist and track are on different volumes")
	ErrInvalidPosition   = fmt.Errorf("no playlist member at the requested position")
	ErrStoreUnavailable  = fmt.Errorf("membership store unavailable")

	// Lookup errors
	ErrPlaylistNotFound = fmt.Errorf("playlist not found")
	ErrTrackNotFound    = fmt.Errorf("track not found")
	ErrMemberNotFound   = fmt.Errorf("playlist member not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
