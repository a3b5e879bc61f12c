// Package apperr defines the error kinds surfaced by target processing.
package apperr

import "errors"

var (
	// ErrFileDoesNotExist marks a target path that could not be stat'ed.
	ErrFileDoesNotExist = errors.New("file does not exist")

	// ErrPathExistsButNotFile marks a path that resolves to something other
	// than a regular UTF-8 text file (directory, device, binary content).
	ErrPathExistsButNotFile = errors.New("path exists but is not a file")

	// ErrFrontmatterDecode marks a frontmatter block that is not valid YAML
	// or carries a wrongly typed recognized key.
	ErrFrontmatterDecode = errors.New("invalid frontmatter")
)
