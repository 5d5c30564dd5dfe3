package mastery

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pattern-mastery/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const recordColumns = `id, user_id, pattern_id, status, times_seen, times_correct,
	times_incorrect, mastery_percentage, ease_factor, interval_days, due_at,
	streak_days, mistake_count_7days, last_seen_at, created_at, updated_at`

func scanRecord(row interface{ Scan(...interface{}) error }) (models.MasteryRecord, error) {
	var r models.MasteryRecord
	err := row.Scan(&r.ID, &r.UserID, &r.PatternID, &r.Status, &r.TimesSeen,
		&r.TimesCorrect, &r.TimesIncorrect, &r.MasteryPercentage, &r.EaseFactor,
		&r.IntervalDays, &r.DueAt, &r.StreakDays, &r.MistakeCount7Days,
		&r.LastSeenAt, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

// GetRecord returns the mastery record for a (user, pattern) key, including
// its recent mistake timestamps. Returns ErrNotFound when absent.
func (s *Store) GetRecord(userID int64, patternID string) (*models.MasteryRecord, error) {
	row := s.db.QueryRow(
		fmt.Sprintf(`SELECT %s FROM user_mastery WHERE user_id = $1 AND pattern_id = $2`, recordColumns),
		userID, patternID,
	)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get mastery record: %w", err)
	}

	mistakes, err := s.recentMistakes(userID, patternID)
	if err != nil {
		return nil, err
	}
	rec.RecentMistakes = mistakes

	return &rec, nil
}

// ListRecords returns all of a user's mastery records with recent mistakes
// attached. Read-only snapshot; callers tolerate slight staleness.
func (s *Store) ListRecords(userID int64) ([]models.MasteryRecord, error) {
	rows, err := s.db.Query(
		fmt.Sprintf(`SELECT %s FROM user_mastery WHERE user_id = $1`, recordColumns),
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list mastery records: %w", err)
	}
	defer rows.Close()

	var records []models.MasteryRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mastery record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	mistakes, err := s.mistakesByPattern(userID)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].RecentMistakes = mistakes[records[i].PatternID]
	}

	return records, nil
}

// Create inserts a first-attempt record. A duplicate key means another
// submission created the record concurrently; that surfaces as ErrConflict
// so the caller retries against the now-existing row.
func (s *Store) Create(rec models.MasteryRecord, recordMistake bool) (*models.MasteryRecord, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`INSERT INTO user_mastery
		 (user_id, pattern_id, status, times_seen, times_correct, times_incorrect,
		  mastery_percentage, ease_factor, interval_days, due_at, streak_days,
		  mistake_count_7days, last_seen_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id, created_at, updated_at`,
		rec.UserID, rec.PatternID, rec.Status, rec.TimesSeen, rec.TimesCorrect,
		rec.TimesIncorrect, rec.MasteryPercentage, rec.EaseFactor, rec.IntervalDays,
		rec.DueAt, rec.StreakDays, rec.MistakeCount7Days, rec.LastSeenAt,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("insert mastery record: %w", err)
	}

	if recordMistake {
		if err := insertMistake(tx, rec.UserID, rec.PatternID, rec.LastSeenAt); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &rec, nil
}

// UpdateVersioned writes an updated record guarded by an optimistic check on
// times_seen. Zero rows affected means a concurrent submission won the race;
// the whole read-modify-write must be retried with fresh state.
func (s *Store) UpdateVersioned(rec models.MasteryRecord, expectedTimesSeen int, recordMistake bool) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`UPDATE user_mastery
		 SET status = $1, times_seen = $2, times_correct = $3, times_incorrect = $4,
		     mastery_percentage = $5, ease_factor = $6, interval_days = $7,
		     due_at = $8, streak_days = $9, mistake_count_7days = $10,
		     last_seen_at = $11, updated_at = NOW()
		 WHERE id = $12 AND times_seen = $13`,
		rec.Status, rec.TimesSeen, rec.TimesCorrect, rec.TimesIncorrect,
		rec.MasteryPercentage, rec.EaseFactor, rec.IntervalDays, rec.DueAt,
		rec.StreakDays, rec.MistakeCount7Days, rec.LastSeenAt,
		rec.ID, expectedTimesSeen,
	)
	if err != nil {
		return fmt.Errorf("update mastery record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrConflict
	}

	if recordMistake {
		if err := insertMistake(tx, rec.UserID, rec.PatternID, rec.LastSeenAt); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// insertMistake appends a mistake timestamp and trims the list to the most
// recent entries, keeping the stored list the canonical representation.
func insertMistake(tx *sql.Tx, userID int64, patternID string, at time.Time) error {
	if _, err := tx.Exec(
		`INSERT INTO mastery_mistakes (user_id, pattern_id, mistake_at) VALUES ($1, $2, $3)`,
		userID, patternID, at,
	); err != nil {
		return fmt.Errorf("insert mistake: %w", err)
	}

	_, err := tx.Exec(
		`DELETE FROM mastery_mistakes
		 WHERE user_id = $1 AND pattern_id = $2 AND id NOT IN (
			SELECT id FROM mastery_mistakes
			WHERE user_id = $1 AND pattern_id = $2
			ORDER BY mistake_at DESC, id DESC
			LIMIT $3
		 )`,
		userID, patternID, recentMistakesKept,
	)
	if err != nil {
		return fmt.Errorf("trim mistakes: %w", err)
	}
	return nil
}

func (s *Store) recentMistakes(userID int64, patternID string) ([]time.Time, error) {
	rows, err := s.db.Query(
		`SELECT mistake_at FROM mastery_mistakes
		 WHERE user_id = $1 AND pattern_id = $2
		 ORDER BY mistake_at ASC`,
		userID, patternID,
	)
	if err != nil {
		return nil, fmt.Errorf("get mistakes: %w", err)
	}
	defer rows.Close()

	var mistakes []time.Time
	for rows.Next() {
		var at time.Time
		if err := rows.Scan(&at); err != nil {
			return nil, fmt.Errorf("scan mistake: %w", err)
		}
		mistakes = append(mistakes, at)
	}
	return mistakes, rows.Err()
}

func (s *Store) mistakesByPattern(userID int64) (map[string][]time.Time, error) {
	rows, err := s.db.Query(
		`SELECT pattern_id, mistake_at FROM mastery_mistakes
		 WHERE user_id = $1
		 ORDER BY pattern_id, mistake_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get mistakes: %w", err)
	}
	defer rows.Close()

	mistakes := make(map[string][]time.Time)
	for rows.Next() {
		var patternID string
		var at time.Time
		if err := rows.Scan(&patternID, &at); err != nil {
			return nil, fmt.Errorf("scan mistake: %w", err)
		}
		mistakes[patternID] = append(mistakes[patternID], at)
	}
	return mistakes, rows.Err()
}

// PruneMistakes deletes mistake timestamps older than the cutoff. Run by the
// maintenance scheduler; the 7-day ranker window makes older rows dead weight.
func (s *Store) PruneMistakes(olderThan time.Time) (int64, error) {
	res, err := s.db.Exec(
		`DELETE FROM mastery_mistakes WHERE mistake_at < $1`,
		olderThan,
	)
	if err != nil {
		return 0, fmt.Errorf("prune mistakes: %w", err)
	}
	return res.RowsAffected()
}
