// Package catalog defines the question catalog: the fixed set of rated
// statements served during an assessment. The default catalog is embedded;
// alternative catalogs can be imported from JSON files validated against
// the embedded schema.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/priyal/worklens/internal/scoring"
)

// Scale bounds for answer values.
const (
	MinRating = 1
	MaxRating = 3
)

// RatingLabels maps the three ordinal levels to their display labels,
// indexed by value-1.
var RatingLabels = [3]string{"Rarely", "Sometimes", "Often"}

//go:embed catalog.json
var defaultCatalog []byte

// Question is a single rated statement.
type Question struct {
	// ID is the stable catalog code, unique within a catalog.
	ID string `json:"id"`
	// DisplayNumber orders questions for presentation, unique within a catalog.
	DisplayNumber int `json:"display_number"`
	// Style is the work style this statement scores toward.
	Style scoring.Style `json:"-"`
	// Group is the context label shown above the statement.
	Group string `json:"group"`
	// Prompt is the statement text.
	Prompt string `json:"prompt"`
}

// questionJSON is the wire form; style travels as its catalog code.
type questionJSON struct {
	ID            string `json:"id"`
	DisplayNumber int    `json:"display_number"`
	Style         string `json:"style"`
	Group         string `json:"group"`
	Prompt        string `json:"prompt"`
}

type catalogJSON struct {
	Version   int            `json:"version"`
	Questions []questionJSON `json:"questions"`
}

// Default returns the embedded question catalog, ordered by display number.
func Default() ([]Question, error) {
	return Parse(defaultCatalog)
}

// Load reads and parses a catalog file.
func Load(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse validates raw catalog JSON against the schema, decodes it, and
// applies the semantic checks the schema cannot express (unique ids,
// unique display numbers, known style codes). Questions are returned
// sorted by display number ascending.
func Parse(data []byte) ([]Question, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var raw catalogJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seenIDs := make(map[string]bool, len(raw.Questions))
	seenNums := make(map[int]bool, len(raw.Questions))
	questions := make([]Question, 0, len(raw.Questions))
	for _, q := range raw.Questions {
		if seenIDs[q.ID] {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		seenIDs[q.ID] = true
		if seenNums[q.DisplayNumber] {
			return nil, fmt.Errorf("duplicate display number %d", q.DisplayNumber)
		}
		seenNums[q.DisplayNumber] = true

		style, ok := scoring.ParseStyle(q.Style)
		if !ok {
			return nil, fmt.Errorf("question %q: unknown style %q", q.ID, q.Style)
		}
		questions = append(questions, Question{
			ID:            q.ID,
			DisplayNumber: q.DisplayNumber,
			Style:         style,
			Group:         q.Group,
			Prompt:        q.Prompt,
		})
	}

	sort.Slice(questions, func(i, j int) bool {
		return questions[i].DisplayNumber < questions[j].DisplayNumber
	})
	return questions, nil
}

// StylePairs projects questions down to the scoring engine's view.
func StylePairs(questions []Question) []scoring.Question {
	pairs := make([]scoring.Question, len(questions))
	for i, q := range questions {
		pairs[i] = scoring.Question{ID: q.ID, Style: q.Style}
	}
	return pairs
}
