package mastery

import (
	"reflect"
	"testing"
	"time"

	"github.com/pattern-mastery/backend/internal/models"
)

func TestProblematicPatternsFilter(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	records := []models.MasteryRecord{
		// No recent mistakes, comfortable ease: excluded.
		{PatternID: "healthy", EaseFactor: 2.8},
		// Low ease alone qualifies.
		{PatternID: "shaky", EaseFactor: 2.0},
		// Recent mistake alone qualifies even at high ease.
		{PatternID: "slipped", EaseFactor: 2.9, RecentMistakes: []time.Time{now.Add(-time.Hour)}},
		// Mistake outside the 7-day window, ease fine: excluded.
		{PatternID: "recovered", EaseFactor: 2.5, RecentMistakes: []time.Time{now.Add(-8 * 24 * time.Hour)}},
	}

	got := ProblematicPatterns(records, now)

	// slipped: 1*10 + 0.1 = 10.1; shaky: 0 + 1.0 = 1.0
	want := []string{"slipped", "shaky"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ProblematicPatterns = %v, want %v", got, want)
	}
}

func TestProblematicPatternsWindowBoundary(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-7 * 24 * time.Hour)

	// A mistake exactly at the cutoff is outside the window.
	atCutoff := []models.MasteryRecord{
		{PatternID: "edge", EaseFactor: 2.5, RecentMistakes: []time.Time{cutoff}},
	}
	if got := ProblematicPatterns(atCutoff, now); len(got) != 0 {
		t.Errorf("mistake at exact cutoff qualified: %v", got)
	}

	// A hair inside the window counts.
	inside := []models.MasteryRecord{
		{PatternID: "edge", EaseFactor: 2.5, RecentMistakes: []time.Time{cutoff.Add(time.Second)}},
	}
	if got := ProblematicPatterns(inside, now); len(got) != 1 {
		t.Errorf("mistake inside window did not qualify: %v", got)
	}
}

func TestProblematicPatternsOrderingAndCap(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	mistake := []time.Time{now.Add(-time.Hour)}

	records := []models.MasteryRecord{
		{PatternID: "one-mistake", EaseFactor: 2.5, RecentMistakes: mistake},
		{PatternID: "two-mistakes", EaseFactor: 2.5, RecentMistakes: []time.Time{now.Add(-time.Hour), now.Add(-2 * time.Hour)}},
		{PatternID: "low-ease-a", EaseFactor: 1.5},
		{PatternID: "low-ease-b", EaseFactor: 1.5},
		{PatternID: "mild", EaseFactor: 2.2},
		{PatternID: "also-mild", EaseFactor: 2.2},
	}

	got := ProblematicPatterns(records, now)

	if len(got) != maxProblematicPatterns {
		t.Fatalf("len = %d, want %d", len(got), maxProblematicPatterns)
	}
	// Highest mistake-weighted score first, equal scores by pattern ID.
	want := []string{"two-mistakes", "one-mistake", "low-ease-a", "low-ease-b", "also-mild"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ProblematicPatterns = %v, want %v", got, want)
	}
}

func TestDuePatterns(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	records := []models.MasteryRecord{
		{PatternID: "future", DueAt: now.Add(time.Hour)},
		{PatternID: "overdue", DueAt: now.Add(-48 * time.Hour)},
		{PatternID: "just-due", DueAt: now},
		{PatternID: "slightly-late", DueAt: now.Add(-time.Hour)},
	}

	got := DuePatterns(records, now)

	want := []string{"overdue", "slightly-late", "just-due"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DuePatterns = %v, want %v", got, want)
	}
}

func TestDuePatternsTiesAndUncapped(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	due := now.Add(-time.Hour)

	// More than five due items all come back, ties broken by pattern ID.
	records := []models.MasteryRecord{
		{PatternID: "f", DueAt: due},
		{PatternID: "b", DueAt: due},
		{PatternID: "d", DueAt: due},
		{PatternID: "a", DueAt: due},
		{PatternID: "e", DueAt: due},
		{PatternID: "c", DueAt: due},
		{PatternID: "g", DueAt: due},
	}

	got := DuePatterns(records, now)

	want := []string{"a", "b", "c", "d", "e", "f", "g"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DuePatterns = %v, want %v", got, want)
	}
}

func TestDuePatternsEmpty(t *testing.T) {
	now := time.Now()
	if got := DuePatterns(nil, now); len(got) != 0 {
		t.Errorf("DuePatterns(nil) = %v, want empty", got)
	}
}
