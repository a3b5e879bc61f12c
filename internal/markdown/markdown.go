package markdown

import (
	"github.com/starford/ansuz/internal/hasher"
	"github.com/starford/ansuz/internal/loader"
)

// Structure is a reserved slot for heading outline extraction. Nothing
// populates it yet.
type Structure struct {
	H1            []string `json:"h1"`
	HasMultipleH1 bool     `json:"hasMultipleH1"`
	H2            []string `json:"h2"`
	H3            []string `json:"h3"`
}

// Document is an assembled markdown record: exactly one Prose, at most one
// Frontmatter, and the file metadata when the document came from disk. The
// raw file content is consumed during assembly and not retained.
type Document struct {
	HasFrontmatter bool             `json:"hasFrontmatter"`
	Frontmatter    *Frontmatter     `json:"frontmatter,omitempty"`
	Prose          Prose            `json:"prose"`
	Structure      *Structure       `json:"structure,omitempty"`
	File           *loader.FileMeta `json:"file,omitempty"`
}

// Splitter separates raw markdown text into prose and optional frontmatter
// and assembles Documents.
type Splitter struct {
	det *Detector
	h   *hasher.Hasher
}

// NewSplitter creates a Splitter using det for detection and h for prose
// digests.
func NewSplitter(det *Detector, h *hasher.Hasher) *Splitter {
	return &Splitter{det: det, h: h}
}

func (s *Splitter) newProse(content string) Prose {
	return Prose{Content: content, Hash: s.h.Sum(content)}
}

// Split separates raw into a Prose and an optional Frontmatter. A Prose is
// always produced, even when empty; decode failures propagate.
func (s *Splitter) Split(raw string) (Prose, *Frontmatter, error) {
	if !s.det.Has(raw) {
		// Exclude is the identity here; prose is built the same way.
		return s.newProse(s.det.Exclude(raw)), nil, nil
	}

	fm, err := s.det.Parse(raw)
	if err != nil {
		return Prose{}, nil, err
	}
	return s.newProse(s.det.Exclude(raw)), &fm, nil
}

// FromRawText assembles a Document directly from text; File stays absent.
func (s *Splitter) FromRawText(raw string) (Document, error) {
	prose, fm, err := s.Split(raw)
	if err != nil {
		return Document{}, err
	}
	return Document{
		HasFrontmatter: fm != nil,
		Frontmatter:    fm,
		Prose:          prose,
	}, nil
}

// FromFileContent assembles a Document from loaded file content. Only the
// metadata survives into the document; fc.Content and fc.Hash are discarded
// after the split.
func (s *Splitter) FromFileContent(fc loader.FileContent) (Document, error) {
	prose, fm, err := s.Split(fc.Content)
	if err != nil {
		return Document{}, err
	}
	meta := fc.Meta
	return Document{
		HasFrontmatter: fm != nil,
		Frontmatter:    fm,
		Prose:          prose,
		File:           &meta,
	}, nil
}
