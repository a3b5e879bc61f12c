package markdown

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/starford/ansuz/internal/hasher"
	"github.com/starford/ansuz/internal/loader"
)

func testSplitter() *Splitter {
	return NewSplitter(NewDetector(), hasher.New(""))
}

func TestSplit_PlainText(t *testing.T) {
	s := testSplitter()
	prose, fm, err := s.Split("plain text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fm != nil {
		t.Errorf("frontmatter = %+v, want nil", fm)
	}
	if prose.Content != "plain text" {
		t.Errorf("prose = %q", prose.Content)
	}
	if prose.Hash != hasher.Hash("plain text") {
		t.Errorf("prose hash = %d", prose.Hash)
	}
}

func TestSplit_EmptyInput(t *testing.T) {
	s := testSplitter()
	prose, fm, err := s.Split("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fm != nil || prose.Content != "" {
		t.Errorf("got (%q, %v)", prose.Content, fm)
	}
}

func TestSplit_WithFrontmatter(t *testing.T) {
	s := testSplitter()
	prose, fm, err := s.Split(fmContent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fm == nil {
		t.Fatal("frontmatter missing")
	}
	if fm.Title != "testing" {
		t.Errorf("title = %q", fm.Title)
	}
	if strings.Contains(prose.Content, "---") {
		t.Errorf("delimiters leaked into prose: %q", prose.Content)
	}
	if prose.Hash != hasher.Hash(prose.Content) {
		t.Error("prose hash does not match its content")
	}
}

func TestSplit_DecodeFailurePropagates(t *testing.T) {
	s := testSplitter()
	_, _, err := s.Split("---\ntitle: [not, a, string]\n---\nbody")
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFromRawText(t *testing.T) {
	s := testSplitter()
	doc, err := s.FromRawText(fmContent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !doc.HasFrontmatter || doc.Frontmatter == nil {
		t.Error("frontmatter should be present")
	}
	if doc.File != nil {
		t.Errorf("file = %+v, want nil for raw text", doc.File)
	}
	if doc.Structure != nil {
		t.Errorf("structure = %+v, want nil (reserved)", doc.Structure)
	}
}

func TestFromRawText_NoFrontmatter(t *testing.T) {
	s := testSplitter()
	doc, err := s.FromRawText("# Hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.HasFrontmatter || doc.Frontmatter != nil {
		t.Error("frontmatter should be absent")
	}
	if doc.Prose.Content != "# Hello" {
		t.Errorf("prose = %q", doc.Prose.Content)
	}
}

func TestFromFileContent_KeepsOnlyMetadata(t *testing.T) {
	s := testSplitter()
	mod := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fc := loader.FileContent{
		Meta:    loader.FileMeta{Filename: "notes.md", Modified: &mod},
		Content: fmContent,
		Hash:    hasher.Hash(fmContent),
	}

	doc, err := s.FromFileContent(fc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.File == nil || doc.File.Filename != "notes.md" {
		t.Fatalf("file meta = %+v", doc.File)
	}

	// The raw content (and its hash) must not survive into the document:
	// the serialized record carries prose and metadata only.
	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), "title: \\\"testing\\\"") {
		t.Errorf("raw frontmatter text retained: %s", out)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, k := range []string{"content", "hash"} {
		if _, ok := m[k]; ok {
			t.Errorf("document exposes raw file %s", k)
		}
	}
}
