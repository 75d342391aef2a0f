// Package session tracks one practice attempt: the target sentence, the
// transcript as a recognizer reports it, and the evaluation after each update.
//
// A session moves Idle -> Recording -> Stopped. Starting a stopped session
// begins a fresh attempt with an empty transcript.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_pronunciation_similarity/internal/core/domain"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/ports"
)

var (
	// ErrNoTarget is returned when recording starts without a target sentence.
	ErrNoTarget = errors.New("session: no target text provided")
	// ErrAlreadyRecording is returned by Start while a recording is in progress.
	ErrAlreadyRecording = errors.New("session: already recording")
	// ErrNotRecording is returned when results arrive or Stop is called outside a recording.
	ErrNotRecording = errors.New("session: not recording")
)

// State is the recording state of a session.
type State int

const (
	Idle State = iota
	Recording
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Recording:
		return "recording"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Evaluator scores a spoken text against a target.
type Evaluator interface {
	Evaluate(target, spoken string) domain.Evaluation
}

// Update is the outcome of evaluating the transcript at one point in time.
type Update struct {
	Target     string
	Transcript string
	// Final is set for the evaluation made when recording stops.
	Final      bool
	Evaluation domain.Evaluation
}

// Listener receives every update. It is called without the session lock held.
type Listener func(Update)

// Option configures a Session.
type Option func(*Session)

// WithListener registers a callback for every evaluation.
func WithListener(fn Listener) Option {
	return func(s *Session) {
		s.listener = fn
	}
}

// WithClock overrides the time source used for the elapsed timer.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// Session is safe for concurrent use.
type Session struct {
	evaluator Evaluator
	logger    ports.Logger
	listener  Listener
	now       func() time.Time

	mu        sync.Mutex
	state     State
	target    string
	final     strings.Builder
	interim   string
	startedAt time.Time
	stoppedAt time.Time
	last      *Update
	// seq increases on every transcript change so late evaluations of an
	// older transcript do not replace newer ones.
	seq uint64
}

// New creates an idle session. A nil logger disables logging.
func New(evaluator Evaluator, logger ports.Logger, opts ...Option) *Session {
	s := &Session{
		evaluator: evaluator,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins recording an attempt at target, discarding any previous transcript.
func (s *Session) Start(target string) error {
	if strings.TrimSpace(target) == "" {
		return ErrNoTarget
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Recording {
		return ErrAlreadyRecording
	}

	s.state = Recording
	s.target = target
	s.final.Reset()
	s.interim = ""
	s.last = nil
	s.seq++
	s.startedAt = s.now()
	s.stoppedAt = time.Time{}

	if s.logger != nil {
		s.logger.Info("Recording started", "target", target)
	}
	return nil
}

// AddResult records a recognizer result. Final results are appended to the
// settled transcript; an interim result replaces the previous interim text.
// The combined transcript is evaluated unless it is blank, in which case
// ok is false.
func (s *Session) AddResult(text string, final bool) (u Update, ok bool, err error) {
	s.mu.Lock()
	if s.state != Recording {
		s.mu.Unlock()
		return Update{}, false, ErrNotRecording
	}

	if final {
		s.final.WriteString(text)
		s.interim = ""
	} else {
		s.interim = text
	}
	transcript := s.final.String() + s.interim
	target := s.target
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	return s.evaluate(seq, target, transcript, false)
}

// Stop ends the recording and evaluates the settled transcript once more,
// falling back to the last displayed transcript when nothing was finalized.
func (s *Session) Stop() (u Update, ok bool, err error) {
	s.mu.Lock()
	if s.state != Recording {
		s.mu.Unlock()
		return Update{}, false, ErrNotRecording
	}

	s.state = Stopped
	s.stoppedAt = s.now()
	transcript := s.final.String()
	if strings.TrimSpace(transcript) == "" {
		transcript += s.interim
	}
	target := s.target
	elapsed := s.stoppedAt.Sub(s.startedAt)
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("Recording stopped", "elapsed", elapsed)
	}
	return s.evaluate(seq, target, transcript, true)
}

func (s *Session) evaluate(seq uint64, target, transcript string, final bool) (Update, bool, error) {
	if strings.TrimSpace(transcript) == "" {
		if s.logger != nil {
			s.logger.Debug("Skipping evaluation of blank transcript")
		}
		return Update{}, false, nil
	}

	u := Update{
		Target:     target,
		Transcript: transcript,
		Final:      final,
		Evaluation: s.evaluator.Evaluate(target, transcript),
	}

	s.mu.Lock()
	if seq == s.seq {
		s.last = &u
	}
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug("Transcript evaluated",
			"score", u.Evaluation.Score,
			"final", final,
		)
	}
	if s.listener != nil {
		s.listener(u)
	}
	return u, true, nil
}

// State returns the current recording state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Target returns the sentence being practised.
func (s *Session) Target() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

// Transcript returns the settled transcript followed by any interim text.
func (s *Session) Transcript() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.final.String() + s.interim
}

// Last returns the most recent evaluation of this attempt.
func (s *Session) Last() (Update, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return Update{}, false
	}
	return *s.last, true
}

// Elapsed returns how long the current or last recording has run.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case Recording:
		return s.now().Sub(s.startedAt)
	case Stopped:
		return s.stoppedAt.Sub(s.startedAt)
	default:
		return 0
	}
}

// FormatElapsed renders d as a mm:ss timer.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
