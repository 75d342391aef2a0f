package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreText(t *testing.T) {
	out, err := run(t, "", "score", "--target", "The Cat", "--spoken", "I saw a cat", "--no-color")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if out != "Score: 36/100\nthe cat\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestScoreJSON(t *testing.T) {
	out, err := run(t, "", "score", "--target", "Hello world.", "--spoken", "hello world", "-o", "json")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	var ev struct {
		Score      int `json:"score"`
		TotalWords int `json:"total_words"`
	}
	if err := json.Unmarshal([]byte(out), &ev); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if ev.Score != 100 || ev.TotalWords != 2 {
		t.Errorf("unexpected evaluation %+v", ev)
	}
}

func TestScoreRequiresTarget(t *testing.T) {
	if _, err := run(t, "", "score", "--spoken", "hello"); err == nil {
		t.Error("expected error without --target")
	}
	if _, err := run(t, "", "score", "--target", "x", "-o", "xml"); err == nil {
		t.Error("expected error for unknown output format")
	}
}

func TestPractice(t *testing.T) {
	input := "~the ear\nthe early bird\n~catch a\ncatches the worm\n"
	out, err := run(t, input, "practice", "--target", "The early bird catches the worm.", "--no-color")
	if err != nil {
		t.Fatalf("practice: %v", err)
	}
	if strings.Count(out, "[update]") != 4 {
		t.Errorf("expected 4 updates in %q", out)
	}
	if !strings.Contains(out, "[update] the early bird catch a\n") {
		t.Errorf("expected interim text joined to the transcript in %q", out)
	}
	if !strings.Contains(out, "[final] the early bird catches the worm\nScore: 100/100") {
		t.Errorf("expected perfect final score in %q", out)
	}
	if !strings.Contains(out, "Time: 00:00") {
		t.Errorf("expected timer line in %q", out)
	}
}

func TestPracticeWithoutSpeech(t *testing.T) {
	out, err := run(t, "", "practice", "--target", "Hello")
	if err != nil {
		t.Fatalf("practice: %v", err)
	}
	if !strings.Contains(out, "No speech recognized.") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestPrompt(t *testing.T) {
	out, err := run(t, "", "prompt", "tongue-twister")
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if out != "She sells seashells by the seashore.\n" {
		t.Errorf("unexpected prompt %q", out)
	}

	out, err = run(t, "", "prompt", "polish", "i enjoy coding")
	if err != nil {
		t.Fatalf("prompt polish: %v", err)
	}
	if out != "I enjoy coding.\n" {
		t.Errorf("unexpected polished text %q", out)
	}

	if _, err := run(t, "", "prompt", "poetry"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
