package compress

// DefaultChunkSize is the staging chunk for compressed bytes moving to
// or from the raw stream.
const DefaultChunkSize = 64 * 1024

type config struct {
	chunkSize int
}

// Option configures compressed stream construction.
type Option func(*config)

// WithChunkSize overrides the staging chunk size.
func WithChunkSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
