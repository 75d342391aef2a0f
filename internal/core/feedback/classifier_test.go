package feedback

import (
	"reflect"
	"testing"

	"github.com/baditaflorin/go_pronunciation_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_pronunciation_similarity/internal/core/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		spoken   string
		expected domain.Feedback
	}{
		{
			name:   "Order preserved, case and punctuation stripped",
			target: "The Cat",
			spoken: "I saw a cat",
			expected: domain.Feedback{
				{Word: "the", Matched: false},
				{Word: "cat", Matched: true},
			},
		},
		{
			name:   "Duplicate target words each matched",
			target: "cat cat",
			spoken: "cat",
			expected: domain.Feedback{
				{Word: "cat", Matched: true},
				{Word: "cat", Matched: true},
			},
		},
		{
			name:     "Punctuation-only target",
			target:   "...",
			spoken:   "anything",
			expected: domain.Feedback{},
		},
		{
			name:   "Empty spoken text",
			target: "Hello there",
			spoken: "",
			expected: domain.Feedback{
				{Word: "hello", Matched: false},
				{Word: "there", Matched: false},
			},
		},
		{
			name:   "Digits are dropped before splitting",
			target: "Gate 7 now",
			spoken: "gate now",
			expected: domain.Feedback{
				{Word: "gate", Matched: true},
				{Word: "now", Matched: true},
			},
		},
		{
			name:   "Extra whitespace tolerated",
			target: "  good   morning ",
			spoken: "morning",
			expected: domain.Feedback{
				{Word: "good", Matched: false},
				{Word: "morning", Matched: true},
			},
		},
		{
			name:   "No partial credit for near words",
			target: "catches",
			spoken: "catch",
			expected: domain.Feedback{
				{Word: "catches", Matched: false},
			},
		},
	}

	c := NewClassifier(nil, normalizer.NewCharsetNormalizer(false))
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Classify(tc.target, tc.spoken)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Classify(%q, %q) = %+v, expected %+v", tc.target, tc.spoken, got, tc.expected)
			}
		})
	}
}

func TestFeedbackMatchedCount(t *testing.T) {
	fb := Compute("the early bird catches the worm", "the bird worm")
	if fb.Matched() != 4 {
		t.Errorf("expected 4 matched words, got %d in %+v", fb.Matched(), fb)
	}
	if len(fb) != 6 {
		t.Errorf("expected 6 words, got %d", len(fb))
	}
}
