package store

import (
	"context"
	"testing"
	"time"

	"github.com/priyal/worklens/internal/assessment"
	"github.com/priyal/worklens/internal/catalog"
	"github.com/priyal/worklens/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedTestCatalog(t *testing.T, s *Store) []catalog.Question {
	t.Helper()
	questions, err := catalog.Default()
	if err != nil {
		t.Fatalf("load default catalog: %v", err)
	}
	if err := s.SeedQuestions(context.Background(), questions); err != nil {
		t.Fatalf("seed questions: %v", err)
	}
	return questions
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestUpsertParticipantStableID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.UpsertParticipant(ctx, assessment.ParticipantDraft{
		FullName: "Dana Cruz",
		Email:    "dana@example.com",
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first == "" {
		t.Fatal("expected a participant id")
	}

	second, err := s.UpsertParticipant(ctx, assessment.ParticipantDraft{
		FullName:     "Dana M. Cruz",
		Email:        "Dana@Example.com", // case and spacing must not fork the row
		Organization: "Acme",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second != first {
		t.Errorf("id = %q, want %q (same email must reuse the row)", second, first)
	}

	n, err := s.Client().Participant.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("participants = %d, want 1", n)
	}
}

func TestCreateAndCompleteAssessment(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	pid, err := s.UpsertParticipant(ctx, assessment.ParticipantDraft{
		FullName: "Dana Cruz", Email: "dana@example.com",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	aid, err := s.CreateAssessment(ctx, pid, assessment.StatusInProgress)
	if err != nil {
		t.Fatalf("create assessment: %v", err)
	}

	var sum scoring.Summary
	sum.Subtotals[scoring.StyleDriving] = 9
	sum.Subtotals[scoring.StyleAnalytical] = 4
	sum.Total = 13

	completedAt := time.Now().UTC().Truncate(time.Second)
	if err := s.CompleteAssessment(ctx, aid, completedAt, sum); err != nil {
		t.Fatalf("complete: %v", err)
	}

	row, err := s.Client().Assessment.Get(ctx, aid)
	if err != nil {
		t.Fatalf("get assessment: %v", err)
	}
	if row.Status != assessment.StatusCompleted {
		t.Errorf("status = %q, want completed", row.Status)
	}
	if row.DominantStyle != "driving" {
		t.Errorf("dominant_style = %q, want driving", row.DominantStyle)
	}
	if row.TotalScore != 13 {
		t.Errorf("total_score = %d, want 13", row.TotalScore)
	}
	if row.Subtotals["driving"] != 9 || row.Subtotals["analytical"] != 4 {
		t.Errorf("subtotals = %v", row.Subtotals)
	}
	if row.CompletedAt == nil {
		t.Error("completed_at not set")
	}
}

func TestSeedQuestionsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	questions := seedTestCatalog(t, s)

	// Seeding again must not duplicate or overwrite.
	if err := s.SeedQuestions(ctx, questions[:1]); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	n, err := s.CountQuestions(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != len(questions) {
		t.Errorf("questions = %d, want %d", n, len(questions))
	}
}

func TestListQuestionsOrdered(t *testing.T) {
	s := openTestStore(t)
	seeded := seedTestCatalog(t, s)

	got, err := s.ListQuestions(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != len(seeded) {
		t.Fatalf("questions = %d, want %d", len(got), len(seeded))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].DisplayNumber >= got[i].DisplayNumber {
			t.Fatalf("questions not ordered at %d: %d >= %d",
				i, got[i-1].DisplayNumber, got[i].DisplayNumber)
		}
	}
	if got[0].Style != seeded[0].Style || got[0].Group != seeded[0].Group {
		t.Errorf("first question = %+v, want %+v", got[0], seeded[0])
	}
}

func TestReplaceQuestions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTestCatalog(t, s)

	replacement := []catalog.Question{
		{ID: "n1", DisplayNumber: 1, Style: scoring.StyleAmiable, Group: "g", Prompt: "p"},
	}
	if err := s.ReplaceQuestions(ctx, replacement); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := s.ListQuestions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "n1" {
		t.Errorf("questions = %+v, want the single replacement row", got)
	}
}

func TestInsertAnswersAtomic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTestCatalog(t, s)

	pid, _ := s.UpsertParticipant(ctx, assessment.ParticipantDraft{
		FullName: "Dana Cruz", Email: "dana@example.com",
	})
	aid, err := s.CreateAssessment(ctx, pid, assessment.StatusInProgress)
	if err != nil {
		t.Fatalf("create assessment: %v", err)
	}

	// The duplicate question id violates the unique index, so the whole
	// batch must roll back.
	bad := []assessment.AnswerRecord{
		{QuestionID: "drv1", Value: 3},
		{QuestionID: "drv1", Value: 1},
	}
	if err := s.InsertAnswers(ctx, aid, bad); err == nil {
		t.Fatal("expected insert to fail")
	}

	n, err := s.Client().Answer.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("answers = %d, want 0 after rollback", n)
	}

	good := []assessment.AnswerRecord{
		{QuestionID: "drv1", Value: 3},
		{QuestionID: "exp1", Value: 2},
	}
	if err := s.InsertAnswers(ctx, aid, good); err != nil {
		t.Fatalf("insert: %v", err)
	}
	n, _ = s.Client().Answer.Query().Count(ctx)
	if n != 2 {
		t.Errorf("answers = %d, want 2", n)
	}
}

func TestExportAssessments(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTestCatalog(t, s)

	pid, _ := s.UpsertParticipant(ctx, assessment.ParticipantDraft{
		FullName: "Dana Cruz", Email: "dana@example.com", Organization: "Acme",
	})
	aid, _ := s.CreateAssessment(ctx, pid, assessment.StatusInProgress)
	if err := s.InsertAnswers(ctx, aid, []assessment.AnswerRecord{
		{QuestionID: "drv1", Value: 3},
		{QuestionID: "ami1", Value: 2},
	}); err != nil {
		t.Fatalf("insert answers: %v", err)
	}

	var sum scoring.Summary
	sum.Subtotals[scoring.StyleDriving] = 3
	sum.Subtotals[scoring.StyleAmiable] = 2
	sum.Total = 5
	if err := s.CompleteAssessment(ctx, aid, time.Now().UTC(), sum); err != nil {
		t.Fatalf("complete: %v", err)
	}

	exports, err := s.ExportAssessments(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(exports) != 1 {
		t.Fatalf("exports = %d, want 1", len(exports))
	}
	exp := exports[0]
	if exp.ID != aid {
		t.Errorf("id = %q, want %q", exp.ID, aid)
	}
	if exp.Participant.Email != "dana@example.com" || exp.Participant.Organization != "Acme" {
		t.Errorf("participant = %+v", exp.Participant)
	}
	if exp.DominantStyle != "driving" || exp.TotalScore != 5 {
		t.Errorf("summary = %q/%d, want driving/5", exp.DominantStyle, exp.TotalScore)
	}
	if len(exp.Answers) != 2 {
		t.Errorf("answers = %d, want 2", len(exp.Answers))
	}
}

func TestResetResponsesKeepsCatalog(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	questions := seedTestCatalog(t, s)

	pid, _ := s.UpsertParticipant(ctx, assessment.ParticipantDraft{
		FullName: "Dana Cruz", Email: "dana@example.com",
	})
	aid, _ := s.CreateAssessment(ctx, pid, assessment.StatusInProgress)
	if err := s.InsertAnswers(ctx, aid, []assessment.AnswerRecord{
		{QuestionID: "drv1", Value: 1},
	}); err != nil {
		t.Fatalf("insert answers: %v", err)
	}

	if err := s.ResetResponses(ctx, false); err != nil {
		t.Fatalf("reset: %v", err)
	}

	for _, q := range []struct {
		name  string
		count func() (int, error)
		want  int
	}{
		{"answers", func() (int, error) { return s.Client().Answer.Query().Count(ctx) }, 0},
		{"assessments", func() (int, error) { return s.Client().Assessment.Query().Count(ctx) }, 0},
		{"participants", func() (int, error) { return s.Client().Participant.Query().Count(ctx) }, 1},
		{"questions", func() (int, error) { return s.CountQuestions(ctx) }, len(questions)},
	} {
		n, err := q.count()
		if err != nil {
			t.Fatalf("count %s: %v", q.name, err)
		}
		if n != q.want {
			t.Errorf("%s = %d, want %d", q.name, n, q.want)
		}
	}
}

func TestResetResponsesIncludingParticipants(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.UpsertParticipant(ctx, assessment.ParticipantDraft{
		FullName: "Dana Cruz", Email: "dana@example.com",
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := s.ResetResponses(ctx, true); err != nil {
		t.Fatalf("reset: %v", err)
	}

	n, err := s.Client().Participant.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("participants = %d, want 0", n)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"participants", "assessments", "questions", "answers"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
