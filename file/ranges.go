package file

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/hupe1980/columnio/buffer"
	"github.com/hupe1980/columnio/stream"
)

// Range identifies a byte range of a file.
type Range struct {
	Offset int64
	Length int64
}

// ReadRanges reads independent byte ranges concurrently and returns one
// buffer per range, in input order. Short ranges at end of file come
// back shrunk and zero-padded like ReadBufferAt.
//
// Positioned reads carry no shared cursor state, so the only bound on
// parallelism is the semaphore; pass parallelism <= 0 for GOMAXPROCS.
func (f *ReadableFile) ReadRanges(ctx context.Context, ranges []Range, parallelism int64) ([]*buffer.Buffer, error) {
	if parallelism <= 0 {
		parallelism = int64(runtime.GOMAXPROCS(0))
	}
	for _, r := range ranges {
		if r.Offset < 0 || r.Length < 0 {
			return nil, stream.Invalidf("negative range (offset %d, length %d)", r.Offset, r.Length)
		}
	}

	out := make([]*buffer.Buffer, len(ranges))
	sem := semaphore.NewWeighted(parallelism)
	g, ctx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		i, r := i, r
		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)
			// Acquire can succeed on a done context when the semaphore
			// has free slots.
			if err := ctx.Err(); err != nil {
				return err
			}
			buf, err := f.ReadBufferAt(r.Offset, r.Length)
			if err != nil {
				return err
			}
			out[i] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
