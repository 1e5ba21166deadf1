package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

var version = "dev"

type cli struct {
	Strict  bool             `help:"Reject out-of-order sequence numbers and bad checksums."`
	Version kong.VersionFlag `help:"Show version."`

	Info   infoCmd   `cmd:"" help:"Print the animation header and frame table."`
	Frames framesCmd `cmd:"" help:"Write every frame as a standalone PNG or raw RGBA."`
}

func main() {
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var c cli
	ctx := kong.Parse(&c,
		kong.Name("apngextract"),
		kong.Description("Inspect animated PNGs and extract their frames."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	if err := ctx.Run(&c); err != nil {
		slog.Error("apngextract failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
