package result

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/priyal/worklens/internal/assessment"
	"github.com/priyal/worklens/internal/catalog"
	"github.com/priyal/worklens/internal/scoring"
)

func completedSession() *assessment.Session {
	sess := assessment.New(nil, nil)
	sess.Stage = assessment.StageResult
	sess.Questions = []catalog.Question{
		{ID: "q1", DisplayNumber: 1, Style: scoring.StyleDriving, Group: "g", Prompt: "p1"},
		{ID: "q2", DisplayNumber: 2, Style: scoring.StyleAmiable, Group: "g", Prompt: "p2"},
	}

	var sum scoring.Summary
	sum.Subtotals[scoring.StyleAmiable] = 3
	sum.Subtotals[scoring.StyleDriving] = 1
	sum.Total = 4
	sess.Summary = &sum
	return sess
}

func TestViewShowsDominantStyle(t *testing.T) {
	s := New(completedSession())
	view := s.View(80, 24)

	if !strings.Contains(view, scoring.StyleAmiable.DisplayName()) {
		t.Error("view should name the dominant style")
	}
	if !strings.Contains(view, "Total score: 4") {
		t.Error("view should show the total score")
	}
}

func TestViewListsEveryStyle(t *testing.T) {
	s := New(completedSession())
	view := s.View(80, 24)

	for _, st := range scoring.Styles {
		if !strings.Contains(view, st.DisplayName()) {
			t.Errorf("view missing style %s", st)
		}
	}
}

func TestViewWithoutSummary(t *testing.T) {
	sess := assessment.New(nil, nil)
	s := New(sess)
	if !strings.Contains(s.View(80, 24), "no result") {
		t.Error("missing summary should render a notice instead of panicking")
	}
}

func TestQuitKey(t *testing.T) {
	s := New(completedSession())

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'q'})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	s := New(completedSession())
	updated, cmd := s.Update(tea.KeyPressMsg{Code: 'x'})
	if cmd != nil {
		t.Error("unexpected command")
	}
	if got, ok := updated.(*ResultScreen); !ok || got != s {
		t.Error("screen must not change")
	}
}
