package mastery

import (
	"sort"
	"time"

	"github.com/pattern-mastery/backend/internal/models"
)

const (
	maxProblematicPatterns = 5
	problematicEaseCutoff  = 2.3
	mistakeWindow          = 7 * 24 * time.Hour
)

// ProblematicPatterns returns up to 5 pattern IDs needing focused attention,
// highest priority first. A record qualifies if it has a mistake inside the
// exact 7-day window or its ease factor is below 2.3. Ties are broken by
// pattern ID for determinism.
func ProblematicPatterns(records []models.MasteryRecord, now time.Time) []string {
	cutoff := now.Add(-mistakeWindow)

	type scored struct {
		patternID string
		score     float64
	}

	var qualifying []scored
	for _, r := range records {
		recentMistakes := 0
		for _, at := range r.RecentMistakes {
			if at.After(cutoff) {
				recentMistakes++
			}
		}
		if recentMistakes == 0 && r.EaseFactor >= problematicEaseCutoff {
			continue
		}
		qualifying = append(qualifying, scored{
			patternID: r.PatternID,
			score:     float64(recentMistakes)*10 + (3.0 - r.EaseFactor),
		})
	}

	sort.Slice(qualifying, func(i, j int) bool {
		if qualifying[i].score != qualifying[j].score {
			return qualifying[i].score > qualifying[j].score
		}
		return qualifying[i].patternID < qualifying[j].patternID
	})

	if len(qualifying) > maxProblematicPatterns {
		qualifying = qualifying[:maxProblematicPatterns]
	}

	ids := make([]string, 0, len(qualifying))
	for _, q := range qualifying {
		ids = append(ids, q.patternID)
	}
	return ids
}

// DuePatterns returns the IDs of all patterns due for review at now,
// most overdue first. Uncapped.
func DuePatterns(records []models.MasteryRecord, now time.Time) []string {
	var due []models.MasteryRecord
	for _, r := range records {
		if !r.DueAt.After(now) {
			due = append(due, r)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if !due[i].DueAt.Equal(due[j].DueAt) {
			return due[i].DueAt.Before(due[j].DueAt)
		}
		return due[i].PatternID < due[j].PatternID
	})

	ids := make([]string, 0, len(due))
	for _, r := range due {
		ids = append(ids, r.PatternID)
	}
	return ids
}
