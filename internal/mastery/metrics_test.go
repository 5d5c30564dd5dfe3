package mastery

import (
	"testing"
	"time"

	"github.com/pattern-mastery/backend/internal/models"
)

func TestOverallMasteryEmpty(t *testing.T) {
	if got := OverallMastery(nil); got != 0 {
		t.Errorf("OverallMastery(nil) = %d, want 0", got)
	}
	if got := OverallMastery([]models.MasteryRecord{}); got != 0 {
		t.Errorf("OverallMastery(empty) = %d, want 0", got)
	}
}

func TestOverallMastery(t *testing.T) {
	records := []models.MasteryRecord{
		{PatternID: "hammer", TimesCorrect: 8, TimesIncorrect: 2},
		{PatternID: "doji", TimesCorrect: 3, TimesIncorrect: 3},
		{PatternID: "marubozu", TimesCorrect: 1, TimesIncorrect: 0},
	}
	// 12 correct out of 17 attempts = 70.58... → 71
	if got := OverallMastery(records); got != 71 {
		t.Errorf("OverallMastery = %d, want 71", got)
	}
}

func TestOverallMasteryRounding(t *testing.T) {
	// 1/3 = 33.33 → 33; 2/3 = 66.67 → 67
	down := []models.MasteryRecord{{TimesCorrect: 1, TimesIncorrect: 2}}
	if got := OverallMastery(down); got != 33 {
		t.Errorf("OverallMastery(1/3) = %d, want 33", got)
	}
	up := []models.MasteryRecord{{TimesCorrect: 2, TimesIncorrect: 1}}
	if got := OverallMastery(up); got != 67 {
		t.Errorf("OverallMastery(2/3) = %d, want 67", got)
	}
}

func TestCurrentStreak(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	// Three records seen today/yesterday, one stale: streak 3.
	records := []models.MasteryRecord{
		{PatternID: "a", LastSeenAt: now.Add(-2 * time.Hour)},
		{PatternID: "b", LastSeenAt: now.Add(-30 * time.Hour)},
		{PatternID: "c", LastSeenAt: now.Add(-40 * time.Hour)},
		{PatternID: "d", LastSeenAt: now.Add(-80 * time.Hour)},
	}
	if got := CurrentStreak(records, now); got != 3 {
		t.Errorf("CurrentStreak = %d, want 3", got)
	}
}

func TestCurrentStreakBrokenByGap(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	// Most recent record is over a day old: streak 0.
	records := []models.MasteryRecord{
		{PatternID: "a", LastSeenAt: now.Add(-49 * time.Hour)},
		{PatternID: "b", LastSeenAt: now.Add(-50 * time.Hour)},
	}
	if got := CurrentStreak(records, now); got != 0 {
		t.Errorf("CurrentStreak = %d, want 0", got)
	}

	if got := CurrentStreak(nil, now); got != 0 {
		t.Errorf("CurrentStreak(nil) = %d, want 0", got)
	}
}
