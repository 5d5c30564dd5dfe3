package practice

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

func (s *Store) InsertSession(sess *models.PracticeSession) error {
	err := s.db.QueryRow(`
		INSERT INTO practice_sessions (user_id, mode, patterns_attempted, correct_count, incorrect_count, duration_seconds)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		sess.UserID, sess.Mode, sess.PatternsAttempted, sess.CorrectCount, sess.IncorrectCount, sess.DurationSeconds,
	).Scan(&sess.ID, &sess.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert practice session: %w", err)
	}
	return nil
}

// RecentSessions returns the user's latest sessions, newest first.
func (s *Store) RecentSessions(userID int64, limit int) ([]models.PracticeSession, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, mode, patterns_attempted, correct_count, incorrect_count, duration_seconds, created_at
		FROM practice_sessions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query practice sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.PracticeSession
	for rows.Next() {
		var sess models.PracticeSession
		if err := rows.Scan(&sess.ID, &sess.UserID, &sess.Mode, &sess.PatternsAttempted,
			&sess.CorrectCount, &sess.IncorrectCount, &sess.DurationSeconds, &sess.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan practice session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}
