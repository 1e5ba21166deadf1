package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/zsiec/apng/apng"
)

type framesCmd struct {
	File   string `arg:"" type:"existingfile" help:"APNG file to extract."`
	Output string `help:"Output directory (created if missing). Defaults to $APNG_OUT or the current directory." short:"o"`
	Name   string `help:"File name prefix." default:"frame"`
	RGBA   bool   `help:"Write raw RGBA buffers (.rgba) instead of PNGs." name:"rgba"`
}

func (c *framesCmd) Run(root *cli) error {
	a, err := load(c.File, root.Strict)
	if err != nil {
		return err
	}

	dir := c.Output
	if dir == "" {
		dir = envOr("APNG_OUT", ".")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	ctx := context.Background()
	if c.RGBA {
		err = writeRGBA(ctx, a, dir, c.Name)
	} else {
		err = a.SaveFrames(ctx, dir, c.Name)
	}
	if err != nil {
		return err
	}
	slog.Info("frames written", "count", len(a.Frames), "dir", dir, "rgba", c.RGBA)
	return nil
}

func writeRGBA(ctx context.Context, a *apng.APNG, dir, name string) error {
	pix, err := a.DecodeAll(ctx)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range pix {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f := a.Frames[i]
			path := filepath.Join(dir, fmt.Sprintf("%s_%d_%dx%d.rgba", name, i, f.Width, f.Height))
			if err := os.WriteFile(path, p, 0o644); err != nil {
				return &apng.FrameError{Index: i, Err: err}
			}
			return nil
		})
	}
	return g.Wait()
}
