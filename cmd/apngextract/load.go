package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/zsiec/apng/apng"
)

func load(path string, strict bool) (*apng.APNG, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts := []apng.ParseOption{apng.ParseOptLogger(slog.Default().With("file", path))}
	if strict {
		opts = append(opts, apng.ParseOptStrictSequence(), apng.ParseOptVerifyChecksums())
	}
	a, err := apng.Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return a, nil
}
