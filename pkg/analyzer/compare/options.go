package compare

// Options configures a comparison run.
type Options struct {
	// KeyColumn selects keyed row matching when it names a common column.
	// Empty selects positional matching. A non-common key column falls back
	// to positional matching with the fallback recorded in the result.
	KeyColumn string
	// IncludeStats specifies whether to compute numeric column aggregates.
	// If nil, defaults to true.
	IncludeStats *bool
}

// DefaultOptions returns default comparison options: positional matching
// with stats enabled.
func DefaultOptions() Options {
	return Options{}
}

// ShouldIncludeStats returns whether numeric aggregates are computed.
func (o Options) ShouldIncludeStats() bool {
	if o.IncludeStats != nil {
		return *o.IncludeStats
	}
	return true
}
