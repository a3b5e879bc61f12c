package dispatch

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/fingerprint"
	"github.com/starford/ansuz/internal/hasher"
	"github.com/starford/ansuz/internal/loader"
	"github.com/starford/ansuz/internal/markdown"
)

func testDispatcher(t *testing.T, files map[string]string, logw io.Writer) *Dispatcher {
	t.Helper()
	if logw == nil {
		logw = io.Discard
	}
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	h := hasher.New("")
	return New(
		fingerprint.DefaultRuleset(),
		loader.New(fs, h),
		markdown.NewSplitter(markdown.NewDetector(), h),
		slog.New(slog.NewTextHandler(logw, nil)),
	)
}

func TestClassify_WarnsOnUnknown(t *testing.T) {
	var buf bytes.Buffer
	d := testDispatcher(t, nil, &buf)

	targets := d.Classify([]string{"notes.md", "image.png"})
	require.Len(t, targets, 2)
	require.Equal(t, fingerprint.KindMarkdown, targets[0].Kind)
	require.Equal(t, fingerprint.KindUnknown, targets[1].Kind)
	require.Contains(t, buf.String(), "image.png")
	require.Contains(t, buf.String(), "ignored")
}

func TestProcess_MixedBatch(t *testing.T) {
	d := testDispatcher(t, map[string]string{
		"first.md":  "---\ntitle: first\n---\nbody one\n",
		"second.md": "just prose\n",
	}, nil)

	targets := d.Classify([]string{"first.md", "gone.md", "second.md"})
	results, failures := d.Process(targets)

	require.Len(t, results, 2, "the failing target must not abort the batch")
	require.Equal(t, "first.md", results[0].Target)
	require.Equal(t, "second.md", results[1].Target)

	require.Len(t, failures, 1)
	require.Equal(t, "gone.md", failures[0].Target)
	require.ErrorIs(t, failures[0].Err, apperr.ErrFileDoesNotExist)
}

func TestProcess_MarkdownDocument(t *testing.T) {
	d := testDispatcher(t, map[string]string{
		"doc.md": "---\ntitle: hello\ncustom: yes\n---\n# Heading\n",
	}, nil)

	results, failures := d.Process(d.Classify([]string{"doc.md"}))
	require.Empty(t, failures)
	require.Len(t, results, 1)

	doc := results[0].Document
	require.NotNil(t, doc)
	require.True(t, doc.HasFrontmatter)
	require.Equal(t, "hello", doc.Frontmatter.Title)
	require.Equal(t, "# Heading\n", doc.Prose.Content)
	require.NotNil(t, doc.File)
	require.Equal(t, "doc.md", doc.File.Filename)
}

func TestProcess_HTMLStub(t *testing.T) {
	d := testDispatcher(t, nil, nil)

	results, failures := d.Process(d.Classify([]string{"page.html"}))
	require.Empty(t, failures)
	require.Len(t, results, 1)
	require.Equal(t, fingerprint.KindHTML, results[0].Kind)
	require.Nil(t, results[0].Document, "html handling is a stub")
}

func TestProcess_UnknownSkipped(t *testing.T) {
	d := testDispatcher(t, nil, nil)

	results, failures := d.Process(d.Classify([]string{"image.png"}))
	require.Empty(t, results)
	require.Empty(t, failures, "unknown targets are warnings, not failures")
}

func TestProcess_FrontmatterDecodeFailureIsolated(t *testing.T) {
	d := testDispatcher(t, map[string]string{
		"bad.md":  "---\ntitle: [1, 2]\n---\nbody\n",
		"good.md": "fine\n",
	}, nil)

	results, failures := d.Process(d.Classify([]string{"bad.md", "good.md"}))
	require.Len(t, results, 1)
	require.Equal(t, "good.md", results[0].Target)
	require.Len(t, failures, 1)
	require.True(t, errors.Is(failures[0].Err, apperr.ErrFrontmatterDecode))
}
