package normalizer

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/baditaflorin/go_pronunciation_similarity/internal/ports"
)

// FoldingNormalizer strips combining marks (é -> e) before delegating to
// another normalizer, so accented letters count as their base letter instead
// of being dropped.
type FoldingNormalizer struct {
	next ports.Normalizer
}

// NewFoldingNormalizer wraps next with accent folding.
func NewFoldingNormalizer(next ports.Normalizer) *FoldingNormalizer {
	return &FoldingNormalizer{next: next}
}

// Normalize folds accents and then applies the wrapped normalizer.
func (n *FoldingNormalizer) Normalize(text string) string {
	// Chained transformers carry state, so each call builds its own.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	return n.next.Normalize(folded)
}
