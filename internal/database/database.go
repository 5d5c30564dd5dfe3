package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func Connect() (*sql.DB, error) {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "mastery_user")
	password := getEnv("DB_PASSWORD", "mastery_password")
	dbname := getEnv("DB_NAME", "pattern_mastery")
	sslmode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

	CREATE TABLE IF NOT EXISTS patterns (
		id                 VARCHAR(100) PRIMARY KEY,
		name               VARCHAR(255) UNIQUE NOT NULL,
		difficulty         VARCHAR(20) NOT NULL,
		category           VARCHAR(20) NOT NULL,
		meaning            TEXT NOT NULL,
		key_rules          JSONB NOT NULL,
		needs_confirmation BOOLEAN NOT NULL DEFAULT FALSE,
		scenarios          JSONB NOT NULL,
		action_protocol    TEXT NOT NULL,
		real_world_context TEXT NOT NULL,
		confusions         JSONB,
		quick_test         JSONB,
		candle_glyph       TEXT,
		created_at         TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_patterns_difficulty ON patterns(difficulty);
	CREATE INDEX IF NOT EXISTS idx_patterns_category ON patterns(category);

	CREATE TABLE IF NOT EXISTS user_mastery (
		id                  BIGSERIAL PRIMARY KEY,
		user_id             BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		pattern_id          VARCHAR(100) NOT NULL REFERENCES patterns(id) ON DELETE CASCADE,
		status              VARCHAR(20) NOT NULL DEFAULT 'new',
		times_seen          INT NOT NULL DEFAULT 0,
		times_correct       INT NOT NULL DEFAULT 0,
		times_incorrect     INT NOT NULL DEFAULT 0,
		mastery_percentage  DECIMAL(6,2) NOT NULL DEFAULT 0,
		ease_factor         DECIMAL(4,2) NOT NULL DEFAULT 2.5 CHECK (ease_factor >= 1.3 AND ease_factor <= 3.0),
		interval_days       INT NOT NULL DEFAULT 1 CHECK (interval_days >= 1),
		due_at              TIMESTAMP WITH TIME ZONE NOT NULL,
		streak_days         INT NOT NULL DEFAULT 0,
		mistake_count_7days INT NOT NULL DEFAULT 0,
		last_seen_at        TIMESTAMP WITH TIME ZONE NOT NULL,
		created_at          TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at          TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(user_id, pattern_id)
	);

	CREATE INDEX IF NOT EXISTS idx_mastery_user ON user_mastery(user_id);
	CREATE INDEX IF NOT EXISTS idx_mastery_due ON user_mastery(user_id, due_at);
	CREATE INDEX IF NOT EXISTS idx_mastery_status ON user_mastery(user_id, status);

	CREATE TABLE IF NOT EXISTS mastery_mistakes (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		pattern_id VARCHAR(100) NOT NULL REFERENCES patterns(id) ON DELETE CASCADE,
		mistake_at TIMESTAMP WITH TIME ZONE NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_mistakes_key ON mastery_mistakes(user_id, pattern_id, mistake_at DESC);

	CREATE TABLE IF NOT EXISTS quiz_attempts (
		id                 BIGSERIAL PRIMARY KEY,
		user_id            BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		pattern_id         VARCHAR(100) NOT NULL REFERENCES patterns(id) ON DELETE CASCADE,
		question_type      VARCHAR(50) NOT NULL,
		difficulty_level   VARCHAR(20) NOT NULL,
		is_correct         BOOLEAN NOT NULL,
		time_taken_seconds INT NOT NULL,
		hints_used         INT NOT NULL DEFAULT 0,
		created_at         TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_quiz_attempts_user ON quiz_attempts(user_id, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_quiz_attempts_pattern ON quiz_attempts(pattern_id);

	CREATE TABLE IF NOT EXISTS practice_sessions (
		id                 BIGSERIAL PRIMARY KEY,
		user_id            BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		mode               VARCHAR(20) NOT NULL,
		patterns_attempted INT NOT NULL,
		correct_count      INT NOT NULL,
		incorrect_count    INT NOT NULL,
		duration_seconds   INT NOT NULL,
		created_at         TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_user ON practice_sessions(user_id, created_at DESC);

	CREATE TABLE IF NOT EXISTS user_stats (
		id                  BIGSERIAL PRIMARY KEY,
		user_id             BIGINT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		longest_streak_days INT NOT NULL DEFAULT 0,
		daily_goal_patterns INT NOT NULL DEFAULT 5,
		patterns_today      INT NOT NULL DEFAULT 0,
		last_activity_at    TIMESTAMP WITH TIME ZONE,
		created_at          TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at          TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_user_stats_user ON user_stats(user_id);
	`

	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
