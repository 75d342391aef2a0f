package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_pronunciation_similarity/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Number of words in the sample target sentence
	SampleWords int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency: runtime.NumCPU(),
		Iterations:  200,
		SampleWords: 12,
		Duration:    2 * time.Second,
		ForceGC:     true,
	}
}

// Stats reports what a warmup run did.
type Stats struct {
	Evaluations int64
	Duration    time.Duration
}

// Manager handles system warmup operations
type Manager struct {
	logger      ports.Logger
	scorers     []ports.Scorer
	classifiers []ports.Classifier
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterScorer adds a scorer to be warmed up
func (wm *Manager) RegisterScorer(s ports.Scorer) {
	wm.scorers = append(wm.scorers, s)
}

// RegisterClassifier adds a classifier to be warmed up
func (wm *Manager) RegisterClassifier(c ports.Classifier) {
	wm.classifiers = append(wm.classifiers, c)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp runs the warmup process for all registered components
func (wm *Manager) WarmUp(ctx context.Context) Stats {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.scorers)+len(wm.classifiers)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	target := generateSampleText(wm.config.SampleWords)
	updates := interimUpdates(target)

	var (
		mu    sync.Mutex
		total int64
		wg    sync.WaitGroup
	)
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var n int64
		loop:
			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-warmupCtx.Done():
					break loop
				default:
				}

				spoken := updates[j%len(updates)]
				for _, norm := range wm.normalizers {
					_ = norm.Normalize(spoken)
				}
				for _, s := range wm.scorers {
					_ = s.Score(target, spoken)
					n++
				}
				for _, c := range wm.classifiers {
					_ = c.Classify(target, spoken)
					n++
				}
			}

			mu.Lock()
			total += n
			mu.Unlock()
		}()
	}
	wg.Wait()

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	stats := Stats{Evaluations: total, Duration: time.Since(startTime)}
	wm.logger.Info("System warmup completed",
		"duration", stats.Duration,
		"evaluations", stats.Evaluations,
	)
	return stats
}

// generateSampleText creates a sentence with the given number of words
func generateSampleText(words int) string {
	vocabulary := []string{
		"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"she", "sells", "seashells", "by", "seashore", "early", "bird",
		"catches", "worm", "actions", "speak", "louder", "than", "words",
	}
	if words <= 0 {
		words = 1
	}

	parts := make([]string, words)
	for i := range parts {
		parts[i] = vocabulary[i%len(vocabulary)]
	}
	return strings.Join(parts, " ")
}

// interimUpdates mimics a recognizer emitting a growing transcript: every
// word prefix of target, followed by a final version with one word misheard.
func interimUpdates(target string) []string {
	words := strings.Fields(target)
	updates := make([]string, 0, len(words)+1)
	for i := 1; i <= len(words); i++ {
		updates = append(updates, strings.Join(words[:i], " "))
	}
	if len(words) > 0 {
		misheard := append([]string(nil), words...)
		misheard[len(misheard)/2] = "misheard"
		updates = append(updates, strings.Join(misheard, " "))
	}
	return updates
}
