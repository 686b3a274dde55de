package contour

// ExtractOptions holds configuration for outline extraction.
type ExtractOptions struct {
	// maxEntries caps the outline size; 0 means the builder default.
	maxEntries int
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		maxEntries: 0, // 0 means outline.DefaultMaxEntries
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		maxEntries: o.maxEntries,
	}
}
