package stats

import (
	"errors"
	"log"
	"time"

	"github.com/pattern-mastery/backend/internal/mastery"
	"github.com/pattern-mastery/backend/internal/models"
)

const (
	minDailyGoal = 1
	maxDailyGoal = 100
)

var ErrInvalidGoal = errors.New("daily goal out of range")

type Service struct {
	store   *Store
	mastery *mastery.Service
}

func NewService(store *Store, masteryService *mastery.Service) *Service {
	return &Service{store: store, mastery: masteryService}
}

// RecordActivity is the post-answer callback from the mastery service.
// Failures here must not fail the answer submission, so errors are logged
// and swallowed.
func (s *Service) RecordActivity(userID int64, now time.Time, currentStreak int) {
	if err := s.store.RecordActivity(userID, now, currentStreak); err != nil {
		log.Printf("[stats] failed to record activity for user %d: %v", userID, err)
	}
}

// GetStats merges the live mastery overview with the persisted aggregate row.
func (s *Service) GetStats(userID int64) (*models.StatsResponse, error) {
	overview, err := s.mastery.GetOverview(userID)
	if err != nil {
		return nil, err
	}

	records, err := s.mastery.Records(userID)
	if err != nil {
		return nil, err
	}
	mastered := 0
	for _, rec := range records {
		if rec.Status == models.StatusMastered {
			mastered++
		}
	}

	st, err := s.store.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	// patterns_today is reset lazily on write; a row untouched since
	// yesterday still holds yesterday's count, so zero it on read too.
	patternsToday := st.PatternsToday
	if st.LastActivityAt == nil || !sameDay(*st.LastActivityAt, time.Now()) {
		patternsToday = 0
	}

	return &models.StatsResponse{
		OverallMasteryPercentage: overview.OverallMasteryPercentage,
		CurrentStreakDays:        overview.CurrentStreakDays,
		LongestStreakDays:        st.LongestStreakDays,
		DailyGoalPatterns:        st.DailyGoalPatterns,
		PatternsToday:            patternsToday,
		DailyGoalReached:         patternsToday >= st.DailyGoalPatterns,
		PatternsTracked:          len(records),
		PatternsMastered:         mastered,
	}, nil
}

func (s *Service) SetDailyGoal(userID int64, target int) (*models.UserStats, error) {
	if target < minDailyGoal || target > maxDailyGoal {
		return nil, ErrInvalidGoal
	}
	return s.store.SetDailyGoal(userID, target)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
