package quiz

import (
	"database/sql"
	"fmt"

	"github.com/pattern-mastery/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InsertAttempt(a *models.QuizAttempt) error {
	err := s.db.QueryRow(`
		INSERT INTO quiz_attempts (user_id, pattern_id, question_type, difficulty_level, is_correct, time_taken_seconds, hints_used)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		a.UserID, a.PatternID, a.QuestionType, a.DifficultyLevel, a.IsCorrect, a.TimeTakenSeconds, a.HintsUsed,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert quiz attempt: %w", err)
	}
	return nil
}

// RecentAttempts returns the user's latest attempts, newest first.
func (s *Store) RecentAttempts(userID int64, limit int) ([]models.QuizAttempt, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, pattern_id, question_type, difficulty_level, is_correct, time_taken_seconds, hints_used, created_at
		FROM quiz_attempts
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query quiz attempts: %w", err)
	}
	defer rows.Close()

	var attempts []models.QuizAttempt
	for rows.Next() {
		var a models.QuizAttempt
		if err := rows.Scan(&a.ID, &a.UserID, &a.PatternID, &a.QuestionType, &a.DifficultyLevel,
			&a.IsCorrect, &a.TimeTakenSeconds, &a.HintsUsed, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quiz attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}
