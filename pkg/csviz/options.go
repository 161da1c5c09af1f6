// Package csviz loads delimiter-separated dataset files with five-line
// directive headers into chart specifications.
package csviz

// DefaultDelimiter is the field delimiter used when none is configured.
const DefaultDelimiter = ","

// Options configures a dataset load.
type Options struct {
	// Delimiter is the field delimiter on directive and data lines.
	// If empty, DefaultDelimiter is used.
	Delimiter string
	// Sheet selects the worksheet when loading an xlsx dataset.
	// If empty, the first sheet is used.
	Sheet string
}

// DefaultOptions returns the default load options.
func DefaultOptions() Options {
	return Options{Delimiter: DefaultDelimiter}
}

func (o Options) delimiter() string {
	if o.Delimiter == "" {
		return DefaultDelimiter
	}
	return o.Delimiter
}
