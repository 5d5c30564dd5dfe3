package stats

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pattern-mastery/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const statsColumns = `id, user_id, longest_streak_days, daily_goal_patterns, patterns_today, last_activity_at, created_at, updated_at`

func scanStats(row *sql.Row) (*models.UserStats, error) {
	var st models.UserStats
	err := row.Scan(&st.ID, &st.UserID, &st.LongestStreakDays, &st.DailyGoalPatterns,
		&st.PatternsToday, &st.LastActivityAt, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// GetOrCreate returns the user's stats row, inserting a default row on
// first access. The upsert keeps concurrent first accesses from racing.
func (s *Store) GetOrCreate(userID int64) (*models.UserStats, error) {
	st, err := scanStats(s.db.QueryRow(`
		INSERT INTO user_stats (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING `+statsColumns,
		userID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	return st, nil
}

// RecordActivity bumps today's counter and the activity timestamp, resetting
// the counter when the last activity was on a different calendar day. The
// timestamp is the caller's transition time, so stats rows stay consistent
// with the mastery record written in the same submission. The longest streak
// only ever grows.
func (s *Store) RecordActivity(userID int64, now time.Time, currentStreak int) error {
	if _, err := s.GetOrCreate(userID); err != nil {
		return err
	}
	_, err := s.db.Exec(`
		UPDATE user_stats
		SET patterns_today = CASE
				WHEN last_activity_at IS NULL OR last_activity_at::date < $3::date THEN 1
				ELSE patterns_today + 1
			END,
			longest_streak_days = GREATEST(longest_streak_days, $2),
			last_activity_at = $3,
			updated_at = NOW()
		WHERE user_id = $1`,
		userID, currentStreak, now,
	)
	if err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

func (s *Store) SetDailyGoal(userID int64, target int) (*models.UserStats, error) {
	if _, err := s.GetOrCreate(userID); err != nil {
		return nil, err
	}
	st, err := scanStats(s.db.QueryRow(`
		UPDATE user_stats
		SET daily_goal_patterns = $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING `+statsColumns,
		userID, target,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to set daily goal: %w", err)
	}
	return st, nil
}

// ResetStaleDailyCounts zeroes patterns_today for rows whose last activity
// predates the current day. Run by the maintenance scheduler.
func (s *Store) ResetStaleDailyCounts() (int64, error) {
	res, err := s.db.Exec(`
		UPDATE user_stats
		SET patterns_today = 0, updated_at = NOW()
		WHERE patterns_today > 0
		  AND (last_activity_at IS NULL OR last_activity_at::date < NOW()::date)`)
	if err != nil {
		return 0, fmt.Errorf("failed to reset daily counts: %w", err)
	}
	return res.RowsAffected()
}
