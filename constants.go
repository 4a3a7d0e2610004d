package pixelfx

// Processor limits.
const (
	// maxWorkers bounds Config.Workers.
	maxWorkers = 1024
)

// Default filter parameters used by the CLI and by Apply when a Params field
// is left at its zero value.
const (
	// DefaultBlurRadius is the blur radius applied when none is given.
	DefaultBlurRadius = 3

	// DefaultBlurSigma is the blur sigma applied when none is given.
	DefaultBlurSigma = 1.5
)
