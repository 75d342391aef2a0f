// Package prompt supplies target sentences for practice.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Kind selects which list a suggestion comes from.
type Kind string

const (
	Practice      Kind = "practice"
	Sentence      Kind = "sentence"
	TongueTwister Kind = "tongue-twister"
	Business      Kind = "business"
	// Polish tidies the caller's current text instead of picking a new one.
	Polish Kind = "polish"
)

var (
	// ErrUnknownKind is returned for a kind outside Kinds().
	ErrUnknownKind = errors.New("prompt: unknown kind")
	// ErrEmptyCatalog is returned when the list for a kind has no entries.
	ErrEmptyCatalog = errors.New("prompt: no sentences for kind")
)

// Kinds lists every supported kind.
func Kinds() []Kind {
	return []Kind{Practice, Sentence, TongueTwister, Business, Polish}
}

// ParseKind converts s to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Catalog holds the sentences offered for each kind.
//
// Example YAML:
//
//	practice:
//	  - "Hello, let me introduce myself."
//	sentences:
//	  - "The early bird catches the worm."
//	tongue_twisters:
//	  - "She sells seashells by the seashore."
//	business:
//	  - "We need to schedule a meeting."
type Catalog struct {
	Practice       []string `yaml:"practice"`
	Sentences      []string `yaml:"sentences"`
	TongueTwisters []string `yaml:"tongue_twisters"`
	Business       []string `yaml:"business"`

	intn func(n int) int
}

// DefaultCatalog returns the built-in sentences.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Practice: []string{
			"Hello, let me introduce myself. My name is Alex and I enjoy coding.",
		},
		Sentences: []string{
			"The early bird catches the worm.",
			"Actions speak louder than words.",
			"I would like to order a cup of coffee please.",
			"Can you tell me how to get to the nearest station?",
		},
		TongueTwisters: []string{
			"She sells seashells by the seashore.",
		},
		Business: []string{
			"We need to schedule a meeting to discuss the project timeline.",
		},
	}
}

// LoadCatalogFile reads a catalog from a YAML file.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("prompt: open catalog %q: %w", path, err)
	}
	defer f.Close()

	c, err := LoadCatalogFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("prompt: parse catalog %q: %w", path, err)
	}
	return c, nil
}

// LoadCatalogFromReader parses a YAML catalog. Unknown keys are rejected.
func LoadCatalogFromReader(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("prompt: decode catalog yaml: %w", err)
	}
	return &c, nil
}

// SetSource makes suggestions deterministic. A catalog with a custom source
// must not be used from several goroutines at once.
func (c *Catalog) SetSource(src rand.Source) {
	c.intn = rand.New(src).IntN
}

// List returns the sentences behind kind.
func (c *Catalog) List(kind Kind) ([]string, error) {
	switch kind {
	case Practice:
		return c.Practice, nil
	case Sentence:
		return c.Sentences, nil
	case TongueTwister:
		return c.TongueTwisters, nil
	case Business:
		return c.Business, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Suggest returns a target sentence of the given kind. For Polish the
// current text is tidied and returned; other kinds ignore current.
func (c *Catalog) Suggest(kind Kind, current string) (string, error) {
	if kind == Polish {
		return PolishText(current), nil
	}

	list, err := c.List(kind)
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", fmt.Errorf("%w: %q", ErrEmptyCatalog, kind)
	}

	intn := c.intn
	if intn == nil {
		intn = rand.IntN
	}
	return list[intn(len(list))], nil
}

// PolishText trims text, capitalizes its first letter and appends a period
// unless it already ends in sentence punctuation. Blank text stays empty.
func PolishText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(text)
	text = string(unicode.ToUpper(r)) + text[size:]
	if !strings.HasSuffix(text, ".") && !strings.HasSuffix(text, "!") && !strings.HasSuffix(text, "?") {
		text += "."
	}
	return text
}
