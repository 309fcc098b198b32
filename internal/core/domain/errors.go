package domain

import "errors"

// Errors surfaced to callers. Adapters wrap them with context using %w so
// errors.Is keeps working at the HTTP boundary.
var (
	ErrProviderUnavailable = errors.New("wallet provider unavailable")
	ErrWalletNotConnected  = errors.New("wallet not connected")
	ErrFetchFailed         = errors.New("failed to fetch campaigns")
	ErrInvalidAmount       = errors.New("enter a valid ETH amount")
	ErrInvalidDuration     = errors.New("enter a valid duration in seconds")
	ErrInvalidCampaign     = errors.New("invalid campaign id")
	ErrInvalidAction       = errors.New("unknown action")
	ErrChainCallFailed     = errors.New("contract call failed")

	// ErrStaleSnapshot is returned to a refresh whose result lost to a newer
	// one that was already applied.
	ErrStaleSnapshot = errors.New("snapshot superseded by a newer refresh")
)
