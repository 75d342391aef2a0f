package pronunciation

import (
	"context"
	"errors"

	"github.com/baditaflorin/go_pronunciation_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/core/feedback"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/core/score"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/ports"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/warmup"
	"github.com/baditaflorin/l"
)

// Engine is a configurable scorer with logging. An Engine is immutable after
// New returns and may be shared across goroutines.
type Engine struct {
	scorer      ports.Scorer
	classifier  ports.Classifier
	normalizers []ports.Normalizer
	logger      ports.Logger
}

// Option defines a functional option for configuring an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	Logger            ports.Logger
	FoldAccents       bool
	ScoringNormalizer ports.Normalizer
	WordNormalizer    ports.Normalizer
	WarmUp            bool
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *engineConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithAccentFolding makes accented letters count as their base letter
// ("café" -> "cafe") instead of being dropped.
func WithAccentFolding(enable bool) Option {
	return func(cfg *engineConfig) {
		cfg.FoldAccents = enable
	}
}

// WithNormalizers replaces the scoring (digits kept) and word (digits dropped)
// normalizers.
func WithNormalizers(scoring, words Normalizer) Option {
	return func(cfg *engineConfig) {
		cfg.ScoringNormalizer = scoring
		cfg.WordNormalizer = words
	}
}

// WithWarmUp runs a short warm-up of the scorer and classifier inside New.
func WithWarmUp(enable bool) Option {
	return func(cfg *engineConfig) {
		cfg.WarmUp = enable
	}
}

// New creates a new Engine. If no logger is provided, a default logger is created.
func New(opts ...Option) (*Engine, error) {
	config := &engineConfig{}
	for _, opt := range opts {
		opt(config)
	}

	if (config.ScoringNormalizer == nil) != (config.WordNormalizer == nil) {
		return nil, errors.New("both scoring and word normalizers must be set")
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	if config.ScoringNormalizer == nil {
		factory := normalizer.NewNormalizerFactory(config.FoldAccents)
		config.ScoringNormalizer = factory.CreateNormalizer(normalizer.ScoringNormalizerType)
		config.WordNormalizer = factory.CreateNormalizer(normalizer.WordNormalizerType)
	}

	e := &Engine{
		scorer:     score.NewCalculator(config.Logger, config.ScoringNormalizer),
		classifier: feedback.NewClassifier(config.Logger, config.WordNormalizer),
		normalizers: []ports.Normalizer{
			config.ScoringNormalizer,
			config.WordNormalizer,
		},
		logger: config.Logger,
	}

	if config.WarmUp {
		e.WarmUp(context.Background(), warmup.DefaultWarmupConfig())
	}

	return e, nil
}

// WarmUp exercises the engine with simulated interim transcripts so pools and
// caches are populated before real traffic arrives.
func (e *Engine) WarmUp(ctx context.Context, config warmup.WarmupConfig) warmup.Stats {
	mgr := warmup.NewManager(e.logger, config)
	mgr.RegisterScorer(e.scorer)
	mgr.RegisterClassifier(e.classifier)
	for _, n := range e.normalizers {
		mgr.RegisterNormalizer(n)
	}
	return mgr.WarmUp(ctx)
}

// Score returns the similarity between target and spoken in [0, 100].
func (e *Engine) Score(target, spoken string) int {
	return e.scorer.Score(target, spoken).Score
}

// ScoreResult returns the score with its edit distance and normalized inputs,
// without classifying words.
func (e *Engine) ScoreResult(target, spoken string) ScoreResult {
	return e.scorer.Score(target, spoken)
}

// WordFeedback classifies each word of target as matched or not by spoken.
func (e *Engine) WordFeedback(target, spoken string) Feedback {
	return e.classifier.Classify(target, spoken)
}

// Evaluate computes the score and the word feedback in one call.
func (e *Engine) Evaluate(target, spoken string) Evaluation {
	ev := evaluate(e.scorer, e.classifier, target, spoken)
	e.logger.Debug("Evaluated utterance",
		"score", ev.Score,
		"matched_words", ev.MatchedWords,
		"total_words", ev.TotalWords,
	)
	return ev
}

// Close releases the engine's logger.
func (e *Engine) Close() error {
	return e.logger.Close()
}
