package practice

import (
	"testing"
	"time"

	"github.com/pattern-mastery/backend/internal/models"
)

func TestCountRecentMistakes(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	rec := &models.MasteryRecord{
		RecentMistakes: []time.Time{
			now.Add(-time.Hour),
			now.Add(-6 * 24 * time.Hour),
			now.Add(-8 * 24 * time.Hour), // outside the window
		},
	}
	if got := countRecentMistakes(rec, now); got != 2 {
		t.Errorf("countRecentMistakes = %d, want 2", got)
	}
}

func TestWeakScoreOrdersUnseenFirst(t *testing.T) {
	unseen := models.PracticePattern{}
	low := 20.0
	weak := models.PracticePattern{MasteryPercentage: &low}

	if weakScore(unseen) >= weakScore(weak) {
		t.Error("unseen pattern should sort before attempted patterns")
	}
}

func TestFilterKeepsMatching(t *testing.T) {
	one := 1
	zero := 0
	in := []models.PracticePattern{
		{MistakeCount: &one},
		{MistakeCount: &zero},
		{},
	}
	out := filter(in, func(pp models.PracticePattern) bool {
		return pp.MistakeCount != nil && *pp.MistakeCount > 0
	})
	if len(out) != 1 {
		t.Errorf("filter kept %d patterns, want 1", len(out))
	}
}
