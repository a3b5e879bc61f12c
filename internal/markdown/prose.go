package markdown

// Prose is the document body remaining after frontmatter removal. Hash is
// the digest of Content, computed at construction.
type Prose struct {
	Content string `json:"content"`
	Hash    uint64 `json:"hash"`
}
