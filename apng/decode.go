package apng

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DecodeAll decodes every frame concurrently and returns their RGBA
// buffers in frame order. The first failure cancels frames not yet
// started and is returned as a *FrameError.
func (a *APNG) DecodeAll(ctx context.Context) ([][]byte, error) {
	out := make([][]byte, len(a.Frames))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range a.Frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pix, err := f.RGBA()
			if err != nil {
				return &FrameError{Index: i, Err: err}
			}
			out[i] = pix
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
