package theme

import (
	"testing"

	"github.com/priyal/worklens/internal/scoring"
)

func TestStyleColorsCoverEveryStyle(t *testing.T) {
	for _, st := range scoring.Styles {
		c, ok := StyleColors[st.String()]
		if !ok {
			t.Errorf("no breakdown color for style %q", st)
			continue
		}
		if c == nil {
			t.Errorf("nil color for style %q", st)
		}
	}
}
