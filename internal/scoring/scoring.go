// Package scoring turns a rated question set into per-style subtotals, a
// grand total, and a dominant work style. It is pure computation: no I/O,
// no error paths, deterministic for any input including partial answer maps.
package scoring

// Style is one of the four fixed work styles.
type Style int

const (
	StyleDriving Style = iota
	StyleExpressive
	StyleAmiable
	StyleAnalytical

	NumStyles = 4
)

// Styles is the canonical enumeration order. Tie-breaks in Dominant resolve
// to the earliest entry, so this order must never change.
var Styles = [NumStyles]Style{StyleDriving, StyleExpressive, StyleAmiable, StyleAnalytical}

// String returns the stable catalog code for the style.
func (s Style) String() string {
	switch s {
	case StyleDriving:
		return "driving"
	case StyleExpressive:
		return "expressive"
	case StyleAmiable:
		return "amiable"
	case StyleAnalytical:
		return "analytical"
	default:
		return "unknown"
	}
}

// DisplayName returns the human-readable style name.
func (s Style) DisplayName() string {
	switch s {
	case StyleDriving:
		return "Driving"
	case StyleExpressive:
		return "Expressive"
	case StyleAmiable:
		return "Amiable"
	case StyleAnalytical:
		return "Analytical"
	default:
		return "Unknown"
	}
}

// Description returns a short blurb shown on the result screen.
func (s Style) Description() string {
	switch s {
	case StyleDriving:
		return "Results first. You set direction quickly, push for decisions, and measure the day in outcomes."
	case StyleExpressive:
		return "Energy first. You think out loud, pull people along, and trade precision for momentum."
	case StyleAmiable:
		return "People first. You build trust, smooth friction, and keep the team moving together."
	case StyleAnalytical:
		return "Evidence first. You slow down for data, weigh the options, and commit when the numbers agree."
	default:
		return ""
	}
}

// ParseStyle maps a catalog code to a Style.
func ParseStyle(code string) (Style, bool) {
	for _, s := range Styles {
		if s.String() == code {
			return s, true
		}
	}
	return 0, false
}

// Question is the minimal view of a catalog question the engine needs.
type Question struct {
	ID    string
	Style Style
}

// Summary holds the four per-style subtotals and the grand total.
// Invariant: Total always equals the sum of the subtotals.
type Summary struct {
	Subtotals [NumStyles]int
	Total     int
}

// Subtotal returns the accumulated score for the given style.
func (s Summary) Subtotal(st Style) int {
	return s.Subtotals[st]
}

// Compute accumulates per-style subtotals and the total in a single pass.
// Questions without an answer contribute 0, so partial answer maps yield
// partial (but still consistent) summaries.
func Compute(questions []Question, answers map[string]int) Summary {
	var sum Summary
	for _, q := range questions {
		v := answers[q.ID]
		sum.Subtotals[q.Style] += v
		sum.Total += v
	}
	return sum
}

// Dominant returns the style with the strictly greatest subtotal. Equal
// subtotals resolve to the style appearing first in Styles. The second
// return is false when no summary exists yet.
func Dominant(sum *Summary) (Style, bool) {
	if sum == nil {
		return 0, false
	}
	best := Styles[0]
	for _, s := range Styles[1:] {
		if sum.Subtotals[s] > sum.Subtotals[best] {
			best = s
		}
	}
	return best, true
}
