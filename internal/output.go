package internal

import (
	"encoding/json"
	"fmt"

	"github.com/starford/ansuz/internal/dispatch"
)

// emit writes the aggregated successes to the result stream: a JSON array
// when forced, otherwise one summary line per result.
func emit(app *application, results []dispatch.Result) error {
	if app.jsonOut {
		if results == nil {
			results = []dispatch.Result{}
		}
		enc := json.NewEncoder(app.out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		if r.Document == nil {
			fmt.Fprintf(app.out, "%-8s  %s\n", r.Kind, r.Target)
			continue
		}
		doc := r.Document
		line := fmt.Sprintf("%-8s  %s  frontmatter=%t  prose_hash=%016x", r.Kind, r.Target, doc.HasFrontmatter, doc.Prose.Hash)
		if doc.Frontmatter != nil && doc.Frontmatter.Title != "" {
			line += fmt.Sprintf("  title=%q", doc.Frontmatter.Title)
		}
		fmt.Fprintln(app.out, line)
	}
	return nil
}
