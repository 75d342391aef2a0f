package domain

// WordMatch is one word of the normalized target and whether the spoken text contains it.
type WordMatch struct {
	Word    string `json:"word"`
	Matched bool   `json:"matched"`
}

// Feedback is ordered by the target's word order, one entry per target word occurrence.
type Feedback []WordMatch

// Matched returns how many entries are marked as matched.
func (f Feedback) Matched() int {
	n := 0
	for _, w := range f {
		if w.Matched {
			n++
		}
	}
	return n
}

// ScoreResult holds the outcome of a similarity score computation.
type ScoreResult struct {
	Score            int
	Distance         int
	LongerLength     int
	NormalizedTarget string
	NormalizedSpoken string
}

// Evaluation combines the score and word feedback for one transcription update.
type Evaluation struct {
	Score            int      `json:"score"`
	Distance         int      `json:"distance"`
	NormalizedTarget string   `json:"normalized_target"`
	NormalizedSpoken string   `json:"normalized_spoken"`
	Words            Feedback `json:"words"`
	MatchedWords     int      `json:"matched_words"`
	TotalWords       int      `json:"total_words"`
}
