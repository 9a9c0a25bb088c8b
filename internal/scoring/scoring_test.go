package scoring

import "testing"

func fourQuestions() []Question {
	return []Question{
		{ID: "q1", Style: StyleDriving},
		{ID: "q2", Style: StyleExpressive},
		{ID: "q3", Style: StyleAmiable},
		{ID: "q4", Style: StyleAnalytical},
	}
}

func TestCompute_OnePerStyle(t *testing.T) {
	answers := map[string]int{"q1": 3, "q2": 2, "q3": 1, "q4": 1}
	sum := Compute(fourQuestions(), answers)

	if sum.Total != 7 {
		t.Errorf("Total = %d, want 7", sum.Total)
	}
	wants := map[Style]int{
		StyleDriving:    3,
		StyleExpressive: 2,
		StyleAmiable:    1,
		StyleAnalytical: 1,
	}
	for st, want := range wants {
		if got := sum.Subtotal(st); got != want {
			t.Errorf("Subtotal(%s) = %d, want %d", st, got, want)
		}
	}

	dom, ok := Dominant(&sum)
	if !ok {
		t.Fatal("expected a dominant style")
	}
	if dom != StyleDriving {
		t.Errorf("Dominant = %s, want driving", dom)
	}
}

func TestCompute_TotalEqualsSubtotalSum(t *testing.T) {
	questions := []Question{
		{ID: "a", Style: StyleDriving},
		{ID: "b", Style: StyleDriving},
		{ID: "c", Style: StyleAmiable},
		{ID: "d", Style: StyleAnalytical},
		{ID: "e", Style: StyleExpressive},
	}
	cases := []map[string]int{
		nil,
		{},
		{"a": 1},
		{"a": 3, "c": 2},
		{"a": 1, "b": 2, "c": 3, "d": 1, "e": 2},
		{"a": 3, "b": 3, "c": 3, "d": 3, "e": 3, "stray": 2},
	}
	for i, answers := range cases {
		sum := Compute(questions, answers)
		total := 0
		for _, st := range Styles {
			total += sum.Subtotal(st)
		}
		if total != sum.Total {
			t.Errorf("case %d: subtotal sum %d != Total %d", i, total, sum.Total)
		}
	}
}

func TestCompute_StrayAnswersIgnored(t *testing.T) {
	sum := Compute(fourQuestions(), map[string]int{"nope": 3})
	if sum.Total != 0 {
		t.Errorf("Total = %d, want 0 (answer for unknown question)", sum.Total)
	}
}

func TestCompute_EmptyAnswers(t *testing.T) {
	sum := Compute(fourQuestions(), nil)
	if sum.Total != 0 {
		t.Errorf("Total = %d, want 0", sum.Total)
	}
	for _, st := range Styles {
		if sum.Subtotal(st) != 0 {
			t.Errorf("Subtotal(%s) = %d, want 0", st, sum.Subtotal(st))
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	answers := map[string]int{"q1": 2, "q3": 3}
	first := Compute(fourQuestions(), answers)
	for i := 0; i < 10; i++ {
		if got := Compute(fourQuestions(), answers); got != first {
			t.Fatalf("run %d: %+v != %+v", i, got, first)
		}
	}
}

func TestDominant_NilSummary(t *testing.T) {
	if _, ok := Dominant(nil); ok {
		t.Error("expected no dominant style for nil summary")
	}
}

func TestDominant_TieBreaksToCanonicalOrder(t *testing.T) {
	// Amiable and Analytical tied on top; Amiable precedes in Styles.
	sum := Summary{Total: 10}
	sum.Subtotals[StyleDriving] = 1
	sum.Subtotals[StyleExpressive] = 2
	sum.Subtotals[StyleAmiable] = 4
	sum.Subtotals[StyleAnalytical] = 4

	for i := 0; i < 10; i++ {
		dom, ok := Dominant(&sum)
		if !ok {
			t.Fatal("expected a dominant style")
		}
		if dom != StyleAmiable {
			t.Fatalf("run %d: Dominant = %s, want amiable (canonical tie-break)", i, dom)
		}
	}
}

func TestDominant_AllZero(t *testing.T) {
	var sum Summary
	dom, ok := Dominant(&sum)
	if !ok {
		t.Fatal("expected a dominant style for zero summary")
	}
	if dom != StyleDriving {
		t.Errorf("Dominant = %s, want driving (first in canonical order)", dom)
	}
}

func TestParseStyle(t *testing.T) {
	for _, st := range Styles {
		got, ok := ParseStyle(st.String())
		if !ok || got != st {
			t.Errorf("ParseStyle(%q) = %v, %v", st.String(), got, ok)
		}
	}
	if _, ok := ParseStyle("decisive"); ok {
		t.Error("expected unknown code to fail")
	}
}
