package normalizer

import "github.com/baditaflorin/go_pronunciation_similarity/internal/ports"

// NormalizerType selects one of the two normalization modes.
type NormalizerType int

const (
	// ScoringNormalizerType keeps [a-z0-9 ] and feeds the similarity score
	ScoringNormalizerType NormalizerType = iota
	// WordNormalizerType keeps [a-z ] and feeds word feedback
	WordNormalizerType
)

// NormalizerFactory creates normalizers for each mode.
type NormalizerFactory struct {
	foldAccents bool
}

// NewNormalizerFactory creates a factory. With foldAccents set, every
// normalizer it builds strips combining marks first.
func NewNormalizerFactory(foldAccents bool) *NormalizerFactory {
	return &NormalizerFactory{foldAccents: foldAccents}
}

// CreateNormalizer builds the normalizer for the given mode.
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	var n ports.Normalizer
	switch normalizerType {
	case WordNormalizerType:
		n = NewCharsetNormalizer(false)
	default:
		n = NewCharsetNormalizer(true)
	}
	if f.foldAccents {
		return NewFoldingNormalizer(n)
	}
	return n
}
