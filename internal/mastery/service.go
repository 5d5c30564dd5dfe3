package mastery

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/pattern-mastery/backend/internal/models"
)

// Catalog is the single thing the core consumes from the pattern catalog:
// existence checks. The engine never reads pattern content.
type Catalog interface {
	Exists(patternID string) (bool, error)
}

// ActivityRecorder receives a notification after each successful answer so
// aggregate per-user stats can be maintained outside the core.
type ActivityRecorder interface {
	RecordActivity(userID int64, now time.Time, currentStreak int)
}

// Retries for the optimistic read-modify-write in SubmitAnswer.
const submitRetries = 3

type Service struct {
	store   *Store
	catalog Catalog
	stats   ActivityRecorder
}

func NewService(store *Store, catalog Catalog) *Service {
	return &Service{store: store, catalog: catalog}
}

// SetActivityRecorder injects the stats collaborator for activity tracking.
func (s *Service) SetActivityRecorder(r ActivityRecorder) {
	s.stats = r
}

// SubmitAnswer runs the mastery engine against the current stored record (or
// absence thereof) and persists the result. Concurrent submissions for the
// same (user, pattern) key are serialized via an optimistic version check on
// times_seen: a lost race retries the whole read-modify-write with fresh
// state. Either the record and all derived fields update together, or
// nothing is written.
func (s *Service) SubmitAnswer(outcome models.AnswerOutcome) (*models.MasteryRecord, error) {
	if outcome.UserID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if outcome.PatternID == "" {
		return nil, fmt.Errorf("%w: pattern id is required", ErrInvalidInput)
	}
	if outcome.TimeTakenSeconds <= 0 {
		return nil, fmt.Errorf("%w: time taken must be positive", ErrInvalidInput)
	}

	exists, err := s.catalog.Exists(outcome.PatternID)
	if err != nil {
		return nil, fmt.Errorf("check pattern: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: pattern %q", ErrNotFound, outcome.PatternID)
	}

	now := time.Now().UTC()

	var saved *models.MasteryRecord
	for attempt := 0; attempt < submitRetries; attempt++ {
		existing, err := s.store.GetRecord(outcome.UserID, outcome.PatternID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}

		next := Apply(existing, outcome, now)

		if existing == nil {
			saved, err = s.store.Create(next, !outcome.IsCorrect)
			if errors.Is(err, ErrConflict) {
				continue
			}
			if err != nil {
				return nil, err
			}
		} else {
			next.ID = existing.ID
			next.CreatedAt = existing.CreatedAt
			err = s.store.UpdateVersioned(next, existing.TimesSeen, !outcome.IsCorrect)
			if errors.Is(err, ErrConflict) {
				continue
			}
			if err != nil {
				return nil, err
			}
			saved = &next
		}
		break
	}
	if saved == nil {
		return nil, ErrConflict
	}

	if s.stats != nil {
		records, err := s.store.ListRecords(outcome.UserID)
		if err != nil {
			log.Printf("[mastery] failed to load records for activity tracking: %v", err)
		} else {
			s.stats.RecordActivity(outcome.UserID, now, CurrentStreak(records, now))
		}
	}

	return saved, nil
}

// GetOverview recomputes the user's aggregate view from current store state.
// Never cached.
func (s *Service) GetOverview(userID int64) (*models.OverviewResponse, error) {
	records, err := s.store.ListRecords(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	problematic := ProblematicPatterns(records, now)
	if problematic == nil {
		problematic = []string{}
	}

	return &models.OverviewResponse{
		OverallMasteryPercentage: OverallMastery(records),
		CurrentStreakDays:        CurrentStreak(records, now),
		ProblematicPatternIDs:    problematic,
	}, nil
}

// GetDueItems returns the pattern IDs due for review at now, most overdue
// first.
func (s *Service) GetDueItems(userID int64, now time.Time) ([]string, error) {
	records, err := s.store.ListRecords(userID)
	if err != nil {
		return nil, err
	}

	due := DuePatterns(records, now)
	if due == nil {
		due = []string{}
	}
	return due, nil
}

// GetRecord returns the mastery record for a single pattern, or ErrNotFound.
func (s *Service) GetRecord(userID int64, patternID string) (*models.MasteryRecord, error) {
	return s.store.GetRecord(userID, patternID)
}

// Records exposes a read-only snapshot of a user's mastery records for
// collaborators (practice set selection, stats).
func (s *Service) Records(userID int64) ([]models.MasteryRecord, error) {
	return s.store.ListRecords(userID)
}
