// Package loader resolves target paths to file metadata and content.
//
// Loading is a two-step upgrade: Stat produces a FileMeta from a filesystem
// stat, LoadContent upgrades it to a FileContent carrying the decoded text
// and its digest. The filesystem is an afero.Fs so tests run against memfs.
package loader

import (
	"bytes"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/hasher"
)

// FileMeta describes a stat'ed regular file. Immutable after creation.
type FileMeta struct {
	Filename string `json:"filename"`
	// IsSymlink reports whether the path is a symlink to the file.
	IsSymlink bool `json:"is_symlink"`
	// Modified and Created are each populated only when the filesystem
	// provides them.
	Modified *time.Time `json:"modified,omitempty"`
	Created  *time.Time `json:"created,omitempty"`
}

// FileContent is a FileMeta upgraded with the file's text and its digest.
// Hash is computed from Content at construction and never recomputed.
type FileContent struct {
	Meta    FileMeta `json:"meta"`
	Content string   `json:"content"`
	Hash    uint64   `json:"hash"`
}

// Loader stats and reads files.
type Loader struct {
	fs afero.Fs
	h  *hasher.Hasher
}

// New creates a Loader over fs, digesting content with h.
func New(fs afero.Fs, h *hasher.Hasher) *Loader {
	return &Loader{fs: fs, h: h}
}

// NewOS creates a Loader over the host filesystem.
func NewOS(h *hasher.Hasher) *Loader {
	return New(afero.NewOsFs(), h)
}

// Stat resolves path to a FileMeta. It fails with apperr.ErrFileDoesNotExist
// when the path cannot be stat'ed and apperr.ErrPathExistsButNotFile when it
// resolves to anything but a regular file. Symlinks to regular files are
// permitted and flagged.
func (l *Loader) Stat(path string) (FileMeta, error) {
	fi, err := l.fs.Stat(path)
	if err != nil {
		return FileMeta{}, fmt.Errorf("loader: stat %q: %w", path, apperr.ErrFileDoesNotExist)
	}
	if !fi.Mode().IsRegular() {
		return FileMeta{}, fmt.Errorf("loader: stat %q: %w", path, apperr.ErrPathExistsButNotFile)
	}

	symlink := false
	if lst, ok := l.fs.(afero.Lstater); ok {
		if lfi, lstatted, lerr := lst.LstatIfPossible(path); lerr == nil && lstatted {
			symlink = lfi.Mode()&os.ModeSymlink != 0
		}
	}

	modified := fi.ModTime()
	return FileMeta{
		Filename:  path,
		IsSymlink: symlink,
		Modified:  &modified,
		Created:   birthtime(fi),
	}, nil
}

// LoadContent reads the file described by meta as UTF-8 text and returns a
// FileContent with its digest. Unreadable or binary content fails with
// apperr.ErrPathExistsButNotFile; binary files are explicitly unsupported.
func (l *Loader) LoadContent(meta FileMeta) (FileContent, error) {
	data, err := afero.ReadFile(l.fs, meta.Filename)
	if err != nil {
		return FileContent{}, fmt.Errorf("loader: read %q: %w", meta.Filename, apperr.ErrPathExistsButNotFile)
	}
	if !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
		return FileContent{}, fmt.Errorf("loader: %q is not UTF-8 text: %w", meta.Filename, apperr.ErrPathExistsButNotFile)
	}

	content := string(data)
	return FileContent{
		Meta:    meta,
		Content: content,
		Hash:    l.h.Sum(content),
	}, nil
}
