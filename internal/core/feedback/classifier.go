// Package feedback classifies each word of a target utterance as matched or
// unmatched against a spoken transcription.
package feedback

import (
	"strings"

	"github.com/baditaflorin/go_pronunciation_similarity/internal/core/domain"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/ports"
)

// Classifier implements bag-of-words containment feedback.
type Classifier struct {
	logger     ports.Logger
	normalizer ports.Normalizer
}

// NewClassifier creates a new word feedback classifier. The normalizer is
// expected to drop digits.
func NewClassifier(logger ports.Logger, normalizer ports.Normalizer) *Classifier {
	return &Classifier{
		logger:     logger,
		normalizer: normalizer,
	}
}

// Classify returns one entry per target word, in target order.
func (c *Classifier) Classify(target, spoken string) domain.Feedback {
	normalizedTarget := c.normalizer.Normalize(target)
	normalizedSpoken := c.normalizer.Normalize(spoken)

	fb := Compute(normalizedTarget, normalizedSpoken)

	if c.logger != nil {
		c.logger.Debug("Computed word feedback",
			"normalizedTarget", normalizedTarget,
			"normalizedSpoken", normalizedSpoken,
			"words", len(fb),
			"matched", fb.Matched(),
		)
	}

	return fb
}

// Compute classifies already-normalized strings. Words are split on runs of
// whitespace; a target word is matched when the same word occurs anywhere in
// the spoken text, so duplicates in the target are each satisfied by a single
// spoken occurrence.
func Compute(normalizedTarget, normalizedSpoken string) domain.Feedback {
	targetWords := strings.Fields(normalizedTarget)
	fb := make(domain.Feedback, 0, len(targetWords))
	if len(targetWords) == 0 {
		return fb
	}

	spokenWords := strings.Fields(normalizedSpoken)
	spokenSet := make(map[string]struct{}, len(spokenWords))
	for _, w := range spokenWords {
		spokenSet[w] = struct{}{}
	}

	for _, w := range targetWords {
		_, ok := spokenSet[w]
		fb = append(fb, domain.WordMatch{Word: w, Matched: ok})
	}
	return fb
}
