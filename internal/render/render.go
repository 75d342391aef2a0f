// Package render turns word feedback into colored terminal text or HTML.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/baditaflorin/go_pronunciation_similarity/internal/core/domain"
)

// Terminal renders feedback with lipgloss styles: matched words green and
// bold, missed words red and underlined.
type Terminal struct {
	matched lipgloss.Style
	missed  lipgloss.Style
	score   lipgloss.Style
}

// NewTerminal creates a terminal renderer. With color disabled the styles
// render plain text.
func NewTerminal(color bool) *Terminal {
	if !color {
		plain := lipgloss.NewStyle()
		return &Terminal{matched: plain, missed: plain, score: plain}
	}
	return &Terminal{
		matched: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		missed:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Underline(true),
		score:   lipgloss.NewStyle().Bold(true),
	}
}

// Words renders the feedback as space separated tokens.
func (t *Terminal) Words(fb domain.Feedback) string {
	parts := make([]string, len(fb))
	for i, w := range fb {
		if w.Matched {
			parts[i] = t.matched.Render(w.Word)
		} else {
			parts[i] = t.missed.Render(w.Word)
		}
	}
	return strings.Join(parts, " ")
}

// Score renders a score as "n/100".
func (t *Terminal) Score(score int) string {
	return t.score.Render(ScoreText(score))
}

// Evaluation renders the score line followed by the word line.
func (t *Terminal) Evaluation(ev domain.Evaluation) string {
	return fmt.Sprintf("Score: %s\n%s", t.Score(ev.Score), t.Words(ev.Words))
}

// ScoreText formats a score for display.
func ScoreText(score int) string {
	return fmt.Sprintf("%d/100", score)
}

// HTML renders feedback as span elements with class "match" or "miss".
func HTML(fb domain.Feedback) string {
	var sb strings.Builder
	for i, w := range fb {
		if i > 0 {
			sb.WriteByte(' ')
		}
		class := "miss"
		if w.Matched {
			class = "match"
		}
		fmt.Fprintf(&sb, `<span class="%s">%s</span>`, class, html.EscapeString(w.Word))
	}
	return sb.String()
}
