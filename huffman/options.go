package huffman

// config holds the settings [Compress] runs with.
type config struct {
	offsetWidth int
}

func defaultConfig() config {
	return config{offsetWidth: OffsetWidth8}
}

// Option changes how [Compress] builds an artifact.
type Option func(*config)

// WithOffsetWidth sets the number of bytes used for each child offset in the
// decode table, either [OffsetWidth8] (the default) or [OffsetWidth16]. Wider
// offsets make the table larger but are needed for large alphabets, where a
// node can be more than 255 records away from its children.
func WithOffsetWidth(width int) Option {
	return func(c *config) {
		c.offsetWidth = width
	}
}
