package scoring

import (
	"testing"

	"github.com/innerlens/innerlens/internal/answers"
	"github.com/innerlens/innerlens/internal/itembank"
)

func testItems(reversed ...bool) []itembank.Item {
	items := make([]itembank.Item, len(reversed))
	for i, r := range reversed {
		items[i] = itembank.Item{
			ID:       idFor(i),
			Group:    "g",
			Text:     "statement",
			Reversed: r,
		}
	}
	return items
}

func idFor(i int) string { return string(rune('a' + i)) }

func TestReversedItemInvertsValue(t *testing.T) {
	items := testItems(false, false, true)
	st := answers.NewStore()
	for _, it := range items {
		if err := st.Upsert(it.ID, 7); err != nil {
			t.Fatal(err)
		}
	}

	s := ScoreGroup("g", items, st)
	// 7 + 7 + (8-7) = 15
	if s.Raw != 15 {
		t.Errorf("Raw = %d, want 15", s.Raw)
	}
}

func TestNeutralAnswersNormalizeToFifty(t *testing.T) {
	// 8-4 == 4, so reversed flags must not matter at the midpoint.
	items := testItems(true, false, true, false)
	st := answers.NewStore()
	for _, it := range items {
		if err := st.Upsert(it.ID, 4); err != nil {
			t.Fatal(err)
		}
	}

	s := ScoreGroup("g", items, st)
	if s.Normalized != 50.0 {
		t.Errorf("Normalized = %v, want 50.0", s.Normalized)
	}
}

func TestMissingAnswersContributeZero(t *testing.T) {
	items := testItems(false, false, false)
	st := answers.NewStore()
	if err := st.Upsert(items[0].ID, 7); err != nil {
		t.Fatal(err)
	}

	s := ScoreGroup("g", items, st)
	if s.Raw != 7 {
		t.Errorf("Raw = %d, want 7", s.Raw)
	}
	want := 7.0 / 21.0 * 100
	if s.Normalized != want {
		t.Errorf("Normalized = %v, want %v", s.Normalized, want)
	}
}

func TestUnansweredGroupScoresZero(t *testing.T) {
	s := ScoreGroup("g", testItems(false, true, false), answers.NewStore())
	if s.Raw != 0 || s.Normalized != 0 {
		t.Errorf("empty group scored %+v, want zero raw and normalized", s)
	}
}

func TestScoreAllCoversEveryGroupInBankOrder(t *testing.T) {
	st := answers.NewStore()
	scores := ScoreAll(itembank.TraitItems(), itembank.TraitGroups(), st)
	groups := itembank.TraitGroups()
	if len(scores) != len(groups) {
		t.Fatalf("ScoreAll returned %d scores, want %d", len(scores), len(groups))
	}
	for i, s := range scores {
		if s.Group != groups[i] {
			t.Errorf("scores[%d].Group = %q, want %q", i, s.Group, groups[i])
		}
		if s.Raw != 0 || s.Normalized != 0 {
			t.Errorf("group %q scored %+v with no answers", s.Group, s)
		}
	}
}

func TestMaximalAnswersNormalizeToHundred(t *testing.T) {
	st := answers.NewStore()
	for _, it := range itembank.StateItems() {
		v := 7
		if it.Reversed {
			v = 1
		}
		if err := st.Upsert(it.ID, v); err != nil {
			t.Fatal(err)
		}
	}
	for _, s := range ScoreAll(itembank.StateItems(), itembank.StateGroups(), st) {
		if s.Normalized != 100.0 {
			t.Errorf("group %q Normalized = %v, want 100.0", s.Group, s.Normalized)
		}
	}
}

func TestScoringIsDeterministic(t *testing.T) {
	st := answers.NewStore()
	for i, it := range itembank.TraitItems() {
		if err := st.Upsert(it.ID, i%7+1); err != nil {
			t.Fatal(err)
		}
	}
	first := ScoreAll(itembank.TraitItems(), itembank.TraitGroups(), st)
	for run := 0; run < 3; run++ {
		again := ScoreAll(itembank.TraitItems(), itembank.TraitGroups(), st)
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("run %d: scores[%d] = %+v, want %+v", run, i, again[i], first[i])
			}
		}
	}
}
