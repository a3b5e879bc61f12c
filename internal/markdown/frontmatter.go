// Package markdown decomposes raw markdown text into a typed frontmatter
// block and a prose body, and assembles the two into a Document.
package markdown

import (
	"encoding/json"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/starford/ansuz/internal/apperr"
)

// Frontmatter is the structured metadata block at the top of a markdown
// file. Recognized keys decode into typed fields; everything else lands in
// Other untouched. Other is excluded from typed-field serialization so a
// recognized key is never emitted twice.
type Frontmatter struct {
	Title        string   `yaml:"title" json:"title,omitempty"`
	Aliases      []string `yaml:"aliases" json:"aliases,omitempty"`
	Tags         []string `yaml:"tags" json:"tags,omitempty"`
	Description  string   `yaml:"description" json:"description,omitempty"`
	Subject      string   `yaml:"subject" json:"subject,omitempty"`
	Category     string   `yaml:"category" json:"category,omitempty"`
	Name         string   `yaml:"name" json:"name,omitempty"`
	Excerpt      string   `yaml:"excerpt" json:"excerpt,omitempty"`
	Image        string   `yaml:"image" json:"image,omitempty"`
	Icon         string   `yaml:"icon" json:"icon,omitempty"`
	Layout       string   `yaml:"layout" json:"layout,omitempty"`
	RequiresAuth *bool    `yaml:"requiresAuth" json:"requiresAuth,omitempty"`

	// Other holds keys whose type is unknown until runtime.
	Other map[string]any `yaml:",inline" json:"-"`
}

// frontmatterFields avoids MarshalJSON recursion when encoding the typed part.
type frontmatterFields Frontmatter

// MarshalJSON flattens Other alongside the typed fields. Typed fields win on
// a key collision, which cannot happen for blocks produced by Parse (inline
// decoding only captures unrecognized keys) but keeps hand-built values sane.
func (f Frontmatter) MarshalJSON() ([]byte, error) {
	typed, err := json.Marshal(frontmatterFields(f))
	if err != nil {
		return nil, err
	}
	if len(f.Other) == 0 {
		return typed, nil
	}

	merged := make(map[string]any, len(f.Other)+12)
	if err := json.Unmarshal(typed, &merged); err != nil {
		return nil, err
	}
	for k, v := range f.Other {
		if _, taken := merged[k]; !taken {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// Detector finds and decodes a leading frontmatter block. It is immutable
// process-wide configuration: build one, inject it everywhere.
//
// A block is a `---` delimiter line starting at the very first byte, any
// body (including none), and a closing `---` delimiter line.
type Detector struct {
	block *regexp.Regexp
}

// NewDetector compiles the detection pattern.
func NewDetector() *Detector {
	return &Detector{
		block: regexp.MustCompile(`(?ms)\A---[ \t]*\r?\n(.*?)^---[ \t]*\r?$\n?`),
	}
}

// Has reports whether raw begins, with no preceding characters, with a
// frontmatter block.
func (d *Detector) Has(raw string) bool {
	return d.block.MatchString(raw)
}

// Exclude returns raw without its frontmatter block: identity when there is
// none, otherwise everything strictly after the closing delimiter line,
// verbatim — leading blank lines included.
func (d *Detector) Exclude(raw string) string {
	loc := d.block.FindStringIndex(raw)
	if loc == nil {
		return raw
	}
	return raw[loc[1]:]
}

// Parse decodes the frontmatter block of raw. Recognized keys must carry
// their declared type; unrecognized keys pass into Other losslessly. A
// missing block, malformed YAML, or a type mismatch fails with
// apperr.ErrFrontmatterDecode.
func (d *Detector) Parse(raw string) (Frontmatter, error) {
	m := d.block.FindStringSubmatch(raw)
	if m == nil {
		return Frontmatter{}, fmt.Errorf("markdown: no leading frontmatter block: %w", apperr.ErrFrontmatterDecode)
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(m[1]), &fm); err != nil {
		return Frontmatter{}, fmt.Errorf("markdown: decode frontmatter: %v: %w", err, apperr.ErrFrontmatterDecode)
	}
	return fm, nil
}
