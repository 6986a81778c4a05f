package stream

import (
	"context"

	"golang.org/x/time/rate"
)

const defaultCopyChunk = 64 * 1024

type copyConfig struct {
	chunkSize int
	limiter   *rate.Limiter
}

// CopyOption configures Copy.
type CopyOption func(*copyConfig)

// WithCopyChunkSize sets the chunk size used to move bytes.
func WithCopyChunkSize(n int) CopyOption {
	return func(c *copyConfig) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

// WithRateLimit throttles the copy to the given limiter, in bytes.
func WithRateLimit(l *rate.Limiter) CopyOption {
	return func(c *copyConfig) {
		c.limiter = l
	}
}

// Copy moves bytes from src to dst in chunks until src is exhausted,
// honoring ctx between chunks. It returns the number of bytes copied.
// Neither stream is closed.
func Copy(ctx context.Context, dst OutputStream, src InputStream, opts ...CopyOption) (int64, error) {
	cfg := copyConfig{chunkSize: defaultCopyChunk}
	for _, opt := range opts {
		opt(&cfg)
	}

	buf := make([]byte, cfg.chunkSize)
	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		n, err := src.Read(buf)
		if err != nil {
			return written, err
		}
		if n == 0 {
			return written, nil
		}
		if cfg.limiter != nil {
			if err := cfg.limiter.WaitN(ctx, n); err != nil {
				return written, err
			}
		}
		if _, err := dst.Write(buf[:n]); err != nil {
			return written, err
		}
		written += int64(n)
	}
}
