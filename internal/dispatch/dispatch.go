// Package dispatch routes classified targets to their handlers and
// aggregates the results.
package dispatch

import (
	"log/slog"

	"github.com/starford/ansuz/internal/fingerprint"
	"github.com/starford/ansuz/internal/loader"
	"github.com/starford/ansuz/internal/markdown"
)

// Result is the outcome for one successfully processed target. Document is
// nil for the HTML stub.
type Result struct {
	Target   string             `json:"target"`
	Kind     fingerprint.Kind   `json:"kind"`
	Document *markdown.Document `json:"document,omitempty"`
}

// Failure pairs a target with the error that stopped it. Failures never
// abort the batch; they are reported alongside the successes.
type Failure struct {
	Target string `json:"target"`
	Err    error  `json:"-"`
}

// Dispatcher processes batches of targets sequentially. Targets share no
// mutable state, so a failing target only removes itself from the output.
type Dispatcher struct {
	rules    *fingerprint.Ruleset
	loader   *loader.Loader
	splitter *markdown.Splitter
	logger   *slog.Logger
}

// New creates a Dispatcher.
func New(rules *fingerprint.Ruleset, l *loader.Loader, s *markdown.Splitter, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{rules: rules, loader: l, splitter: s, logger: logger}
}

// Classify fingerprints each input, warning about unknown targets. Unknown
// is not an error: the target is kept in the slice (so callers can count
// it) but Process skips it.
func (d *Dispatcher) Classify(inputs []string) []fingerprint.Target {
	targets := make([]fingerprint.Target, 0, len(inputs))
	for _, in := range inputs {
		t := d.rules.Classify(in)
		if t.Kind == fingerprint.KindUnknown {
			d.logger.Warn("target was not recognized and will be ignored", slog.String("target", in))
		}
		targets = append(targets, t)
	}
	return targets
}

// Process routes each target by kind and returns the successes, preserving
// input order, plus the per-target failures.
func (d *Dispatcher) Process(targets []fingerprint.Target) ([]Result, []Failure) {
	var results []Result
	var failures []Failure
	for _, t := range targets {
		switch t.Kind {
		case fingerprint.KindMarkdown:
			res, err := d.markdownFile(t)
			if err != nil {
				d.logger.Warn("target failed", slog.String("target", t.Input), slog.String("error", err.Error()))
				failures = append(failures, Failure{Target: t.Input, Err: err})
				continue
			}
			results = append(results, res)
		case fingerprint.KindHTML:
			results = append(results, d.htmlFile(t))
		case fingerprint.KindUnknown:
			// Already warned during classification.
		}
	}
	return results, failures
}

// markdownFile stats, loads, and assembles one markdown target.
func (d *Dispatcher) markdownFile(t fingerprint.Target) (Result, error) {
	d.logger.Info("processing as a local markdown file", slog.String("target", t.Input))

	meta, err := d.loader.Stat(t.Input)
	if err != nil {
		return Result{}, err
	}
	fc, err := d.loader.LoadContent(meta)
	if err != nil {
		return Result{}, err
	}
	doc, err := d.splitter.FromFileContent(fc)
	if err != nil {
		return Result{}, err
	}
	return Result{Target: t.Input, Kind: t.Kind, Document: &doc}, nil
}

// htmlFile is a stub: HTML targets are acknowledged with an empty result.
func (d *Dispatcher) htmlFile(t fingerprint.Target) Result {
	d.logger.Info("processing as a local HTML file", slog.String("target", t.Input))
	return Result{Target: t.Input, Kind: t.Kind}
}
