package internal

import (
	"io"

	"github.com/spf13/afero"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config  *Config
	targets []string
	jsonOut bool
	watch   bool
	out     io.Writer
	fs      afero.Fs
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithTargets sets the target strings to process.
func WithTargets(targets []string) Option {
	return func(a *application) {
		a.targets = targets
	}
}

// WithJSONOutput forces the aggregated result to be emitted as JSON.
func WithJSONOutput(enabled bool) Option {
	return func(a *application) {
		a.jsonOut = enabled
	}
}

// WithWatch keeps the process alive after the initial batch, re-inspecting
// markdown targets when their files change.
func WithWatch(enabled bool) Option {
	return func(a *application) {
		a.watch = enabled
	}
}

// WithOutput redirects the result stream (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(a *application) {
		a.out = w
	}
}

// WithFilesystem replaces the host filesystem, for tests.
func WithFilesystem(fs afero.Fs) Option {
	return func(a *application) {
		a.fs = fs
	}
}
