package normalizer

import (
	"strings"

	"github.com/baditaflorin/go_pronunciation_similarity/internal/pool"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/ports"
)

// CharsetNormalizer lowercases text and drops every character outside a fixed
// ASCII set: lowercase letters, the space character, and optionally digits.
// Runs of spaces are left as they are.
type CharsetNormalizer struct {
	// keep[b] reports whether the lowercased byte b survives normalization
	keep [128]bool

	keepDigits bool
	bytePool   *pool.BufferPool
}

// NewCharsetNormalizer creates a normalizer that keeps [a-z ] and, when
// keepDigits is set, [0-9] as well.
func NewCharsetNormalizer(keepDigits bool) *CharsetNormalizer {
	n := &CharsetNormalizer{
		keepDigits: keepDigits,
		bytePool:   pool.NewBufferPool(256),
	}
	for b := 'a'; b <= 'z'; b++ {
		n.keep[b] = true
	}
	n.keep[' '] = true
	if keepDigits {
		for b := '0'; b <= '9'; b++ {
			n.keep[b] = true
		}
	}
	return n
}

// KeepsDigits reports whether digits survive normalization.
func (n *CharsetNormalizer) KeepsDigits() bool {
	return n.keepDigits
}

// Normalize returns the lowercased text restricted to the normalizer's charset.
func (n *CharsetNormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	asciiOnly := true
	for i := 0; i < len(text); i++ {
		if text[i] >= 0x80 {
			asciiOnly = false
			break
		}
	}
	// Full Unicode lowercasing can map non-ASCII runes onto ASCII letters
	// (KELVIN SIGN -> k), so it has to run before filtering.
	if !asciiOnly {
		text = strings.ToLower(text)
	}

	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)
	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}

	for i := 0; i < len(text); i++ {
		b := text[i]
		if b >= 0x80 {
			continue
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		if n.keep[b] {
			*buffer = append(*buffer, b)
		}
	}

	return string(*buffer)
}

var _ ports.Normalizer = (*CharsetNormalizer)(nil)
