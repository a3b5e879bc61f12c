// Package testutil provides shared helpers for assembling the processing
// pipeline over an in-memory filesystem.
package testutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/afero"

	"github.com/starford/ansuz/internal/dispatch"
	"github.com/starford/ansuz/internal/fingerprint"
	"github.com/starford/ansuz/internal/hasher"
	"github.com/starford/ansuz/internal/loader"
	"github.com/starford/ansuz/internal/markdown"
)

// MemFS builds an in-memory filesystem populated with files.
func MemFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return fs
}

// Components builds the pipeline pieces over an in-memory filesystem.
func Components(t *testing.T, files map[string]string) (*fingerprint.Ruleset, *loader.Loader, *markdown.Splitter) {
	t.Helper()
	h := hasher.New("")
	fs := MemFS(t, files)
	return fingerprint.DefaultRuleset(), loader.New(fs, h), markdown.NewSplitter(markdown.NewDetector(), h)
}

// Dispatcher builds a full dispatcher over an in-memory filesystem, logging
// to io.Discard.
func Dispatcher(t *testing.T, files map[string]string) *dispatch.Dispatcher {
	t.Helper()
	rules, l, s := Components(t, files)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return dispatch.New(rules, l, s, logger)
}
