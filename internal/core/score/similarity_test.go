package score

import (
	"testing"

	"github.com/baditaflorin/go_pronunciation_similarity/internal/adapters/normalizer"
)

func newTestCalculator() *Calculator {
	return NewCalculator(nil, normalizer.NewCharsetNormalizer(true))
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		spoken   string
		expected int
	}{
		{"Identical after normalization", "Hello world.", "hello world", 100},
		{"Both empty", "", "", 100},
		{"Both punctuation only", "...", "?!", 100},
		{"Empty target falls through", "", "anything", 0},
		{"Punctuation target falls through", "...", "hi", 0},
		{"Completely different", "abc", "xyz", 0},
		{"One substitution", "cat", "cut", 67},
		{"Digits are significant", "Room 101", "room 110", 75},
		{"Partial sentence", "The early bird catches the worm.", "the early bird catch a worm", 84},
		{"Rounds half away from zero", "abcdefgh", "abcdefg", 88},
		{"Tongue twister", "She sells seashells by the seashore.", "she sell sea shells on the sea shore", 86},
	}

	c := newTestCalculator()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Score(tc.target, tc.spoken)
			if got.Score != tc.expected {
				t.Errorf("Score(%q, %q) = %d, expected %d (distance %d)", tc.target, tc.spoken, got.Score, tc.expected, got.Distance)
			}
		})
	}
}

func TestScoreSymmetricAndBounded(t *testing.T) {
	inputs := []string{"", ".", "a", "The Cat", "I saw a cat", "cat cat", "Room 101", "Hello, world!", "zzzzzzzzzz"}
	c := newTestCalculator()
	for _, a := range inputs {
		for _, b := range inputs {
			ab := c.Score(a, b).Score
			ba := c.Score(b, a).Score
			if ab != ba {
				t.Errorf("Score(%q, %q) = %d but Score(%q, %q) = %d", a, b, ab, b, a, ba)
			}
			if ab < MinScore || ab > MaxScore {
				t.Errorf("Score(%q, %q) = %d out of range", a, b, ab)
			}
		}
	}
}

func TestScoreIsIdempotent(t *testing.T) {
	c := newTestCalculator()
	first := c.Score("Actions speak louder than words.", "actions speak louder then word")
	second := c.Score("Actions speak louder than words.", "actions speak louder then word")
	if first != second {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}

func TestComputeReportsNormalizedForms(t *testing.T) {
	got := Compute("ab", "abc")
	if got.LongerLength != 3 || got.Distance != 1 || got.Score != 67 {
		t.Errorf("unexpected result %+v", got)
	}
	if got.NormalizedTarget != "ab" || got.NormalizedSpoken != "abc" {
		t.Errorf("normalized forms were swapped: %+v", got)
	}
}
