// Package pronunciation scores how closely a spoken transcription matches a
// target sentence and reports which target words were heard.
//
// The score is an integer between 0 and 100 derived from the Levenshtein
// distance between the normalized texts:
//
//	score = round((len(longer) - distance(longer, shorter)) / len(longer) * 100)
//
// Word feedback lists every word of the target, in order, marked as matched
// when the same word appears anywhere in the transcription.
//
// All functions are pure: they keep no state between calls and are safe to
// call concurrently, typically once per interim or final transcription update.
package pronunciation

import (
	"github.com/baditaflorin/go_pronunciation_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/core/domain"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/core/feedback"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/core/score"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/ports"
)

// WordMatch is one target word and whether it was heard.
type WordMatch = domain.WordMatch

// Feedback is the ordered per-word classification of a target.
type Feedback = domain.Feedback

// ScoreResult is a score together with the distance and normalized forms it came from.
type ScoreResult = domain.ScoreResult

// Evaluation bundles the score and feedback of a single update.
type Evaluation = domain.Evaluation

// Normalizer canonicalizes raw text before comparison.
type Normalizer = ports.Normalizer

var (
	scoringNormalizer = normalizer.NewCharsetNormalizer(true)
	wordNormalizer    = normalizer.NewCharsetNormalizer(false)

	defaultScorer     = score.NewCalculator(nil, scoringNormalizer)
	defaultClassifier = feedback.NewClassifier(nil, wordNormalizer)
)

// Normalize lowercases text and keeps only [a-z ] plus, when keepDigits is
// set, [0-9]. Repeated spaces are preserved.
func Normalize(text string, keepDigits bool) string {
	if keepDigits {
		return scoringNormalizer.Normalize(text)
	}
	return wordNormalizer.Normalize(text)
}

// Score returns the similarity between target and spoken in [0, 100].
// Two texts that are both empty after normalization score 100.
func Score(target, spoken string) int {
	return defaultScorer.Score(target, spoken).Score
}

// WordFeedback classifies each word of target as matched or not by spoken.
func WordFeedback(target, spoken string) Feedback {
	return defaultClassifier.Classify(target, spoken)
}

// Evaluate computes the score and the word feedback in one call.
func Evaluate(target, spoken string) Evaluation {
	return evaluate(defaultScorer, defaultClassifier, target, spoken)
}

func evaluate(s ports.Scorer, c ports.Classifier, target, spoken string) Evaluation {
	sr := s.Score(target, spoken)
	fb := c.Classify(target, spoken)
	return Evaluation{
		Score:            sr.Score,
		Distance:         sr.Distance,
		NormalizedTarget: sr.NormalizedTarget,
		NormalizedSpoken: sr.NormalizedSpoken,
		Words:            fb,
		MatchedWords:     fb.Matched(),
		TotalWords:       len(fb),
	}
}
