package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/zsiec/apng/apng"
)

type infoCmd struct {
	File string `arg:"" type:"existingfile" help:"APNG file to inspect."`
}

func (c *infoCmd) Run(root *cli) error {
	a, err := load(c.File, root.Strict)
	if err != nil {
		return err
	}
	printInfo(os.Stdout, a)
	return nil
}

func printInfo(w io.Writer, a *apng.APNG) {
	head := color.New(color.FgCyan, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	loops := "forever"
	if a.LoopCount > 0 {
		loops = fmt.Sprintf("%d", a.LoopCount)
	}

	fmt.Fprintln(w, head("canvas"))
	fmt.Fprintf(w, "  size      %dx%d\n", a.Width, a.Height)
	fmt.Fprintf(w, "  format    %v, %d-bit\n", a.ColorType, a.BitDepth)
	if a.InterlaceMethod == 1 {
		fmt.Fprintln(w, "  interlace adam7")
	}
	fmt.Fprintf(w, "  frames    %d (declared %d)\n", len(a.Frames), a.FrameCount)
	fmt.Fprintf(w, "  loops     %s\n", loops)
	fmt.Fprintf(w, "  duration  %v\n", a.Duration())

	fmt.Fprintln(w, head("frames"))
	for i, f := range a.Frames {
		fmt.Fprintf(w, "  %3d  %dx%d+%d+%d  %v  %s\n",
			i, f.Width, f.Height, f.Left, f.Top, f.Delay(),
			dim(fmt.Sprintf("dispose=%v blend=%v", f.DisposeOp, f.BlendOp)))
	}
}
