package mastery

import (
	"math"
	"sort"
	"time"

	"github.com/pattern-mastery/backend/internal/models"
)

// OverallMastery returns lifetime accuracy across all records as a rounded
// percentage. Distinct from the per-record rolling mastery percentage.
func OverallMastery(records []models.MasteryRecord) int {
	totalAttempts := 0
	totalCorrect := 0
	for _, r := range records {
		totalAttempts += r.TimesCorrect + r.TimesIncorrect
		totalCorrect += r.TimesCorrect
	}
	if totalAttempts == 0 {
		return 0
	}
	return int(math.Round(100 * float64(totalCorrect) / float64(totalAttempts)))
}

// CurrentStreak counts, from the most recently seen record downward, how
// many consecutive records were last attempted within a day of now. It
// counts records, not calendar days — an approximation of a day streak
// using per-pattern attempt recency.
func CurrentStreak(records []models.MasteryRecord, now time.Time) int {
	sorted := append([]models.MasteryRecord(nil), records...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LastSeenAt.After(sorted[j].LastSeenAt)
	})

	streak := 0
	for _, r := range sorted {
		daysSince := int(math.Floor(now.Sub(r.LastSeenAt).Hours() / 24))
		if daysSince > 1 {
			break
		}
		streak++
	}
	return streak
}
