package practice

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/pattern-mastery/backend/internal/catalog"
	"github.com/pattern-mastery/backend/internal/mastery"
	"github.com/pattern-mastery/backend/internal/models"
)

const (
	weakSetSize          = 5
	weakMasteryThreshold = 60
	recentMistakeWindow  = 7 * 24 * time.Hour
)

var ErrPatternNotFound = errors.New("pattern not found")

type Service struct {
	store   *Store
	catalog *catalog.Store
	mastery *mastery.Service
}

func NewService(store *Store, catalogStore *catalog.Store, masteryService *mastery.Service) *Service {
	return &Service{store: store, catalog: catalogStore, mastery: masteryService}
}

// Generate selects the patterns for a practice run. Endless and timed modes
// shuffle the whole catalog; mistakes and weak_set modes narrow it down from
// the user's mastery records. count <= 0 means no limit.
func (s *Service) Generate(userID int64, mode models.PracticeMode, count int) ([]models.PracticePattern, error) {
	patterns, err := s.catalog.List(models.PatternListRequest{Limit: 100})
	if err != nil {
		return nil, fmt.Errorf("failed to load patterns for practice: %w", err)
	}

	records, err := s.mastery.Records(userID)
	if err != nil {
		return nil, err
	}
	byPattern := make(map[string]*models.MasteryRecord, len(records))
	for i := range records {
		byPattern[records[i].PatternID] = &records[i]
	}

	out := make([]models.PracticePattern, 0, len(patterns))
	for _, p := range patterns {
		pp := models.PracticePattern{Pattern: p}
		if rec, ok := byPattern[p.ID]; ok {
			pct := rec.MasteryPercentage
			mistakes := countRecentMistakes(rec, time.Now())
			pp.MasteryPercentage = &pct
			pp.MistakeCount = &mistakes
		}
		out = append(out, pp)
	}

	switch mode {
	case models.ModeMistakes:
		out = filter(out, func(pp models.PracticePattern) bool {
			return pp.MistakeCount != nil && *pp.MistakeCount > 0
		})
	case models.ModeWeakSet:
		out = filter(out, func(pp models.PracticePattern) bool {
			return pp.MasteryPercentage == nil || *pp.MasteryPercentage < weakMasteryThreshold
		})
		// Weakest first, unseen patterns ahead of everything.
		sort.SliceStable(out, func(i, j int) bool {
			return weakScore(out[i]) < weakScore(out[j])
		})
		if len(out) > weakSetSize {
			out = out[:weakSetSize]
		}
		return trim(out, count), nil
	}

	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return trim(out, count), nil
}

func trim(in []models.PracticePattern, count int) []models.PracticePattern {
	if count > 0 && len(in) > count {
		return in[:count]
	}
	return in
}

// Submit grades a practice answer and feeds the outcome into the mastery
// engine. Practice answers are not logged individually; sessions are saved
// as aggregates via SaveSession.
func (s *Service) Submit(userID int64, req models.PracticeSubmitRequest) (*models.QuizSubmitResponse, error) {
	pattern, err := s.catalog.Get(req.PatternID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPatternNotFound
	}
	if err != nil {
		return nil, err
	}

	correct := false
	explanation := ""
	if pattern.QuickTest != nil {
		correct = *req.SelectedAnswer == pattern.QuickTest.CorrectOptionIndex
		explanation = pattern.QuickTest.Explanation
	}

	record, err := s.mastery.SubmitAnswer(models.AnswerOutcome{
		UserID:           userID,
		PatternID:        pattern.ID,
		IsCorrect:        correct,
		TimeTakenSeconds: req.TimeTakenSeconds,
	})
	if err != nil {
		return nil, err
	}

	return &models.QuizSubmitResponse{
		Correct:     correct,
		Explanation: explanation,
		Mastery:     *record,
	}, nil
}

func (s *Service) SaveSession(userID int64, req models.SaveSessionRequest) (*models.PracticeSession, error) {
	sess := &models.PracticeSession{
		UserID:            userID,
		Mode:              models.PracticeMode(req.Mode),
		PatternsAttempted: req.PatternsAttempted,
		CorrectCount:      req.CorrectCount,
		IncorrectCount:    req.IncorrectCount,
		DurationSeconds:   req.DurationSeconds,
	}
	if err := s.store.InsertSession(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// RecentSessions returns the user's latest saved sessions, newest first.
func (s *Service) RecentSessions(userID int64, limit int) ([]models.PracticeSession, error) {
	sessions, err := s.store.RecentSessions(userID, limit)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []models.PracticeSession{}
	}
	return sessions, nil
}

func countRecentMistakes(rec *models.MasteryRecord, now time.Time) int {
	cutoff := now.Add(-recentMistakeWindow)
	count := 0
	for _, at := range rec.RecentMistakes {
		if at.After(cutoff) {
			count++
		}
	}
	return count
}

// weakScore orders weak-set candidates: unseen patterns sort before any
// attempted pattern.
func weakScore(pp models.PracticePattern) float64 {
	if pp.MasteryPercentage == nil {
		return -1
	}
	return *pp.MasteryPercentage
}

func filter(in []models.PracticePattern, keep func(models.PracticePattern) bool) []models.PracticePattern {
	out := in[:0]
	for _, pp := range in {
		if keep(pp) {
			out = append(out, pp)
		}
	}
	return out
}
