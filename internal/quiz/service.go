package quiz

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand"

	"github.com/pattern-mastery/backend/internal/catalog"
	"github.com/pattern-mastery/backend/internal/mastery"
	"github.com/pattern-mastery/backend/internal/models"
)

const (
	defaultQuestionCount = 5
	maxQuestionCount     = 20

	questionTypeQuickTest = "quick_test"
)

var (
	ErrPatternNotFound = errors.New("pattern not found")
	ErrNoQuestion      = errors.New("pattern has no quiz question")
)

type Service struct {
	store   *Store
	catalog *catalog.Store
	mastery *mastery.Service
}

func NewService(store *Store, catalogStore *catalog.Store, masteryService *mastery.Service) *Service {
	return &Service{store: store, catalog: catalogStore, mastery: masteryService}
}

// Generate builds a randomized quiz from the catalog's embedded questions.
// Answers are graded server-side, so the correct option index is never
// included in the generated questions.
func (s *Service) Generate(difficulty *string, count int) ([]models.QuizQuestion, error) {
	if count <= 0 {
		count = defaultQuestionCount
	}
	if count > maxQuestionCount {
		count = maxQuestionCount
	}

	patterns, err := s.catalog.List(models.PatternListRequest{Difficulty: difficulty, Limit: 100})
	if err != nil {
		return nil, fmt.Errorf("failed to load patterns for quiz: %w", err)
	}

	var pool []models.Pattern
	for _, p := range patterns {
		if p.QuickTest != nil {
			pool = append(pool, p)
		}
	}
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > count {
		pool = pool[:count]
	}

	questions := make([]models.QuizQuestion, 0, len(pool))
	for _, p := range pool {
		questions = append(questions, models.QuizQuestion{
			PatternID:    p.ID,
			PatternName:  p.Name,
			QuestionType: questionTypeQuickTest,
			Question:     p.QuickTest.Question,
			Options:      p.QuickTest.Options,
			Difficulty:   p.Difficulty,
		})
	}
	return questions, nil
}

// History returns the user's recent graded attempts, newest first.
func (s *Service) History(userID int64, limit int) ([]models.QuizAttempt, error) {
	attempts, err := s.store.RecentAttempts(userID, limit)
	if err != nil {
		return nil, err
	}
	if attempts == nil {
		attempts = []models.QuizAttempt{}
	}
	return attempts, nil
}

// Submit grades an answer against the pattern's embedded question, logs the
// attempt, and feeds the outcome into the mastery engine.
func (s *Service) Submit(userID int64, req models.QuizSubmitRequest) (*models.QuizSubmitResponse, error) {
	pattern, err := s.catalog.Get(req.PatternID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPatternNotFound
	}
	if err != nil {
		return nil, err
	}
	if pattern.QuickTest == nil {
		return nil, ErrNoQuestion
	}

	correct := *req.SelectedAnswer == pattern.QuickTest.CorrectOptionIndex

	attempt := &models.QuizAttempt{
		UserID:           userID,
		PatternID:        pattern.ID,
		QuestionType:     questionTypeQuickTest,
		DifficultyLevel:  pattern.Difficulty,
		IsCorrect:        correct,
		TimeTakenSeconds: req.TimeTakenSeconds,
		HintsUsed:        req.HintsUsed,
	}
	if err := s.store.InsertAttempt(attempt); err != nil {
		return nil, err
	}

	record, err := s.mastery.SubmitAnswer(models.AnswerOutcome{
		UserID:           userID,
		PatternID:        pattern.ID,
		IsCorrect:        correct,
		TimeTakenSeconds: req.TimeTakenSeconds,
		HintsUsed:        req.HintsUsed,
	})
	if err != nil {
		return nil, err
	}

	return &models.QuizSubmitResponse{
		Correct:     correct,
		Explanation: pattern.QuickTest.Explanation,
		Mastery:     *record,
	}, nil
}
