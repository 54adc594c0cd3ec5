package ncformatter

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	// Normalization
	extended    bool
	diagnostics bool

	// Rendering
	includeTables bool

	// Extras added to the result
	markdown bool
	fields   bool
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		extended:      false,
		diagnostics:   true,
		includeTables: false,
		markdown:      false,
		fields:        false,
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		extended:      o.extended,
		diagnostics:   o.diagnostics,
		includeTables: o.includeTables,
		markdown:      o.markdown,
		fields:        o.fields,
	}
}
