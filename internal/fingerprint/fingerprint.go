// Package fingerprint classifies raw target strings by pattern.
package fingerprint

import "regexp"

// Kind is the classification assigned to a target string. It determines
// which handler processes the target downstream.
type Kind string

const (
	KindMarkdown Kind = "markdown"
	KindHTML     Kind = "html"

	// KindUnknown marks a target matching no rule. Unknown is never an
	// error: the target is warned about and skipped, not aborted on.
	KindUnknown Kind = "unknown"
)

// Target pairs the user's raw input with its classification. Created once
// per input and never mutated.
type Target struct {
	Input string `json:"input"`
	Kind  Kind   `json:"kind"`
}

type rule struct {
	re   *regexp.Regexp
	kind Kind
}

// Ruleset is an immutable, priority-ordered rule list. The first matching
// rule wins; declaration order is the tie-break. Build one at startup and
// inject it wherever classification happens.
type Ruleset struct {
	rules []rule
}

// DefaultRuleset returns the built-in rules: *.md is Markdown, *.htm and
// *.html are HTML. The leading \w mirrors the path patterns: a bare ".md"
// is not a markdown file name.
func DefaultRuleset() *Ruleset {
	return &Ruleset{rules: []rule{
		{kind: KindMarkdown, re: regexp.MustCompile(`\w\.md$`)},
		{kind: KindHTML, re: regexp.MustCompile(`\w\.html?$`)},
	}}
}

// Classify evaluates the rules in order against input and returns the
// Target for the first match, or an Unknown target when nothing matches.
func (rs *Ruleset) Classify(input string) Target {
	for _, r := range rs.rules {
		if r.re.MatchString(input) {
			return Target{Input: input, Kind: r.kind}
		}
	}
	return Target{Input: input, Kind: KindUnknown}
}
