package ports

import (
	"github.com/baditaflorin/go_pronunciation_similarity/internal/core/domain"
)

// Scorer computes a 0-100 similarity score between a target and a spoken utterance.
type Scorer interface {
	Score(target, spoken string) domain.ScoreResult
}

// Classifier computes word-level match feedback for a target utterance.
type Classifier interface {
	Classify(target, spoken string) domain.Feedback
}
