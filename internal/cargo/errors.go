package cargo

import "errors"

// Error sentinels shared across the trading core. Callers match with errors.Is.
var (
	// ErrNotFound marks lookups of unknown cargo names or quality tiers.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument marks malformed input: missing season, non-positive
	// quantity, malformed haggle result.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConfigurationMissing marks settlements missing required fields.
	ErrConfigurationMissing = errors.New("configuration missing")
)
