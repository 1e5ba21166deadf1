package apng

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const fileMode = 0o644

// SaveFrames writes every frame as a standalone PNG named <name>_<i>.png
// inside dir. The directory must already exist.
func (a *APNG) SaveFrames(ctx context.Context, dir, name string) error {
	if dir == "" {
		return ErrOutputDirRequired
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range a.Frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, fmt.Sprintf("%s_%d.png", name, i))
			if err := os.WriteFile(path, f.PNG(), fileMode); err != nil {
				return &FrameError{Index: i, Err: err}
			}
			return nil
		})
	}
	return g.Wait()
}

// Save writes the frame as a standalone PNG named <name>.png inside dir.
func (f *Frame) Save(dir, name string) error {
	if dir == "" {
		return ErrOutputDirRequired
	}
	return os.WriteFile(filepath.Join(dir, name+".png"), f.PNG(), fileMode)
}
