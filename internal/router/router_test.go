package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/priyal/worklens/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
	lastMsg tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushAndPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
	if r.Active().Title() != "second" {
		t.Errorf("active = %q, want second", r.Active().Title())
	}

	r.Pop()
	if r.Active().Title() != "first" {
		t.Errorf("active = %q, want first", r.Active().Title())
	}
}

func TestPopRefusesToEmptyStack(t *testing.T) {
	r := New(&stubScreen{title: "only"})
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("active = %q, want second", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
	if r.Depth() != 1 {
		t.Errorf("depth = %d, replace must not grow the stack", r.Depth())
	}
}

func TestPushScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Update(PushScreenMsg{Screen: &stubScreen{title: "second"}})
	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	s2 := &stubScreen{title: "second"}
	r := New(s1)
	r.Push(s2)

	msg := tea.WindowSizeMsg{Width: 80, Height: 24}
	r.Update(msg)

	if s2.lastMsg != tea.Msg(msg) {
		t.Error("active screen did not receive the message")
	}
	if s1.lastMsg != nil {
		t.Error("inactive screen must not receive messages")
	}
}
