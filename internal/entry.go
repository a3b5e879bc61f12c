// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/starford/ansuz/internal/dispatch"
	"github.com/starford/ansuz/internal/fingerprint"
	"github.com/starford/ansuz/internal/hasher"
	"github.com/starford/ansuz/internal/loader"
	"github.com/starford/ansuz/internal/markdown"
	"github.com/starford/ansuz/internal/watch"
)

func newApplication(opts ...Option) *application {
	app := &application{
		out: os.Stdout,
		fs:  afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// dispatcher wires the processing pipeline: one ruleset, one detector, one
// hasher, built once and injected.
func (a *application) dispatcher(logger *slog.Logger) *dispatch.Dispatcher {
	h := hasher.New(a.config.Hasher.Secret)
	return dispatch.New(
		fingerprint.DefaultRuleset(),
		loader.New(a.fs, h),
		markdown.NewSplitter(markdown.NewDetector(), h),
		logger,
	)
}

// Run executes one batch over the configured targets: classify, process,
// emit the aggregate to the output stream. Diagnostics go to stderr so the
// result stream stays clean. With watch enabled, Run then keeps re-inspecting
// markdown targets until ctx is cancelled.
func Run(ctx context.Context, opts ...Option) error {
	app := newApplication(opts...)
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := app.config

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.Level(),
	}))
	slog.SetDefault(logger)

	if len(app.targets) > 1 {
		logger.Info("processing targets", slog.Int("count", len(app.targets)))
	}

	d := app.dispatcher(logger)
	targets := d.Classify(app.targets)
	results, failures := d.Process(targets)

	if err := emit(app, results); err != nil {
		return err
	}
	if len(app.targets) > 0 && len(results) == 0 && len(failures) > 0 {
		return fmt.Errorf("all %d targets failed", len(failures))
	}

	if !app.watch {
		return nil
	}

	var watched []string
	for _, t := range targets {
		if t.Kind == fingerprint.KindMarkdown {
			watched = append(watched, t.Input)
		}
	}
	if len(watched) == 0 {
		return fmt.Errorf("watch requested but no markdown targets to watch")
	}

	refresh := func(path string) {
		fresh, _ := d.Process([]fingerprint.Target{{Input: path, Kind: fingerprint.KindMarkdown}})
		if len(fresh) == 0 {
			return // failure already logged by the dispatcher
		}
		if err := json.NewEncoder(app.out).Encode(fresh[0]); err != nil {
			logger.Error("emit refresh failed", slog.String("error", err.Error()))
		}
	}
	return watch.Watch(ctx, watched, cfg.Watch.Debounce(), logger, refresh)
}
