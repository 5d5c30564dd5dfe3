package mastery

import (
	"math"
	"time"

	"github.com/pattern-mastery/backend/internal/models"
)

const (
	// Rolling accuracy window (attempts).
	rollingWindow = 10

	minEaseFactor = 1.3
	maxEaseFactor = 3.0

	easeGainOnCorrect   = 0.1
	easeLossOnIncorrect = 0.2

	// Mistake timestamps kept per record.
	recentMistakesKept = 5
)

// Apply is the authoritative mastery state transition, applied on every
// answer regardless of which surface (quiz, practice, direct submit) the
// answer came from. It is pure: no I/O, no clock reads, deterministic for
// a given (existing, outcome, now).
//
// Pass existing == nil for the first attempt on a (user, pattern) pair.
func Apply(existing *models.MasteryRecord, outcome models.AnswerOutcome, now time.Time) models.MasteryRecord {
	if existing == nil {
		return firstAttempt(outcome, now)
	}

	rec := *existing
	rec.RecentMistakes = append([]time.Time(nil), existing.RecentMistakes...)

	if outcome.IsCorrect {
		rec.EaseFactor = math.Min(rec.EaseFactor+easeGainOnCorrect, maxEaseFactor)
		rec.IntervalDays = int(math.Ceil(float64(rec.IntervalDays) * rec.EaseFactor))
		rec.StreakDays++
		if rec.MistakeCount7Days > 0 {
			rec.MistakeCount7Days--
		}
	} else {
		rec.EaseFactor = math.Max(rec.EaseFactor-easeLossOnIncorrect, minEaseFactor)
		rec.IntervalDays = 1
		rec.StreakDays = 0
		rec.MistakeCount7Days++
		rec.RecentMistakes = appendMistake(rec.RecentMistakes, now)
	}

	rec.DueAt = now.Add(time.Duration(rec.IntervalDays) * 24 * time.Hour)

	rec.TimesSeen++
	if outcome.IsCorrect {
		rec.TimesCorrect++
	} else {
		rec.TimesIncorrect++
	}

	rec.MasteryPercentage = rollingMastery(rec.TimesCorrect, rec.TimesSeen)
	rec.Status = StatusFor(rec.MasteryPercentage)
	rec.LastSeenAt = now

	return rec
}

func firstAttempt(outcome models.AnswerOutcome, now time.Time) models.MasteryRecord {
	rec := models.MasteryRecord{
		UserID:       outcome.UserID,
		PatternID:    outcome.PatternID,
		TimesSeen:    1,
		IntervalDays: 1,
		DueAt:        now.Add(24 * time.Hour),
		LastSeenAt:   now,
	}

	if outcome.IsCorrect {
		rec.TimesCorrect = 1
		rec.MasteryPercentage = 100
		rec.EaseFactor = 2.5
		rec.Status = models.StatusLearning
		rec.StreakDays = 1
	} else {
		rec.TimesIncorrect = 1
		rec.MasteryPercentage = 0
		rec.EaseFactor = minEaseFactor
		rec.Status = models.StatusNew
		rec.StreakDays = 0
		rec.MistakeCount7Days = 1
		rec.RecentMistakes = []time.Time{now}
	}

	return rec
}

// rollingMastery approximates trailing-window accuracy using the cumulative
// correct count over min(timesSeen, window) attempts. Past the window this
// is a known simplification that can exceed 100; the status thresholds were
// tuned against this exact formula, so it must not be replaced with a true
// sliding window.
func rollingMastery(timesCorrect, timesSeen int) float64 {
	if timesSeen <= rollingWindow {
		return 100 * float64(timesCorrect) / float64(timesSeen)
	}
	return 100 * float64(timesCorrect) / float64(rollingWindow)
}

// StatusFor reclassifies a record from its rolling mastery percentage.
// It is a pure reclassification, not a guarded state machine: a wrong
// answer can demote a mastered record straight back to learning or new.
func StatusFor(masteryPercentage float64) models.LearningStatus {
	switch {
	case masteryPercentage >= 85:
		return models.StatusMastered
	case masteryPercentage >= 60:
		return models.StatusReviewing
	case masteryPercentage >= 30:
		return models.StatusLearning
	default:
		return models.StatusNew
	}
}

func appendMistake(mistakes []time.Time, at time.Time) []time.Time {
	mistakes = append(mistakes, at)
	if len(mistakes) > recentMistakesKept {
		mistakes = mistakes[len(mistakes)-recentMistakesKept:]
	}
	return mistakes
}
