// Package hasher computes 64-bit content digests. The digest is xxHash:
// fast, avalanche-sensitive, and stable across runs and platforms. It is
// not a cryptographic hash; a secret-keyed digest obfuscates, nothing more.
package hasher

import "github.com/cespare/xxhash/v2"

// Hash returns the 64-bit digest of content.
func Hash(content string) uint64 {
	return xxhash.Sum64String(content)
}

// SecretHash returns the digest of content keyed by secret. Distinct
// secrets yield distinct digests for the same content. The separator byte
// keeps the secret/content boundary from being ambiguous.
func SecretHash(content, secret string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(secret)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(content)
	return d.Sum64()
}

// Hasher carries an optional secret so every component digests content the
// same way. The zero value hashes without a secret.
type Hasher struct {
	secret string
}

// New creates a Hasher. An empty secret selects the plain digest.
func New(secret string) *Hasher {
	return &Hasher{secret: secret}
}

// Sum digests content, keyed by the configured secret if one is set.
func (h *Hasher) Sum(content string) uint64 {
	if h == nil || h.secret == "" {
		return Hash(content)
	}
	return SecretHash(content, h.secret)
}
