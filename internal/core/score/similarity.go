// Package score computes the sentence-level similarity score.
//
// Both utterances are normalized, the longer of the two is identified, and
// the score is
//
//	round((len(longer) - levenshtein(longer, shorter)) / len(longer) * 100)
//
// Two utterances that are both empty after normalization score 100.
package score

import (
	"math"

	"github.com/baditaflorin/go_pronunciation_similarity/internal/core/distance"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/core/domain"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/ports"
)

const (
	// MinScore is the lowest possible score.
	MinScore = 0
	// MaxScore is a perfect match.
	MaxScore = 100
)

// Calculator implements the edit-distance similarity score.
type Calculator struct {
	logger     ports.Logger
	normalizer ports.Normalizer
}

// NewCalculator creates a new similarity calculator. The normalizer is
// expected to keep digits.
func NewCalculator(logger ports.Logger, normalizer ports.Normalizer) *Calculator {
	return &Calculator{
		logger:     logger,
		normalizer: normalizer,
	}
}

// Score computes the similarity between target and spoken.
func (c *Calculator) Score(target, spoken string) domain.ScoreResult {
	normalizedTarget := c.normalizer.Normalize(target)
	normalizedSpoken := c.normalizer.Normalize(spoken)

	result := Compute(normalizedTarget, normalizedSpoken)

	if c.logger != nil {
		c.logger.Debug("Computed similarity score",
			"normalizedTarget", normalizedTarget,
			"normalizedSpoken", normalizedSpoken,
			"distance", result.Distance,
			"longer_length", result.LongerLength,
			"score", result.Score,
		)
	}

	return result
}

// Compute scores two already-normalized strings.
func Compute(normalizedTarget, normalizedSpoken string) domain.ScoreResult {
	result := domain.ScoreResult{
		NormalizedTarget: normalizedTarget,
		NormalizedSpoken: normalizedSpoken,
	}

	longer, shorter := normalizedTarget, normalizedSpoken
	if len(longer) < len(shorter) {
		longer, shorter = shorter, longer
	}
	result.LongerLength = len(longer)

	if len(longer) == 0 {
		result.Score = MaxScore
		return result
	}

	d := distance.Levenshtein(longer, shorter)
	result.Distance = d
	result.Score = clamp(int(math.Round(float64(len(longer)-d) / float64(len(longer)) * 100)))
	return result
}

func clamp(s int) int {
	if s < MinScore {
		return MinScore
	}
	if s > MaxScore {
		return MaxScore
	}
	return s
}
