package models

import "time"

type LearningStatus string

const (
	StatusNew       LearningStatus = "new"
	StatusLearning  LearningStatus = "learning"
	StatusReviewing LearningStatus = "reviewing"
	StatusMastered  LearningStatus = "mastered"
)

// MasteryRecord tracks one user's spaced-repetition state for one pattern.
// Invariant: TimesSeen == TimesCorrect + TimesIncorrect.
type MasteryRecord struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	PatternID string `json:"pattern_id"`

	Status         LearningStatus `json:"status"`
	TimesSeen      int            `json:"times_seen"`
	TimesCorrect   int            `json:"times_correct"`
	TimesIncorrect int            `json:"times_incorrect"`

	// Rolling estimate over the last 10 attempts. Once TimesSeen exceeds
	// the window this is an approximation, not lifetime accuracy, and it
	// can exceed 100 for long all-correct histories.
	MasteryPercentage float64 `json:"mastery_percentage"`

	EaseFactor   float64   `json:"ease_factor"`
	IntervalDays int       `json:"interval_days"`
	DueAt        time.Time `json:"due_at"`
	StreakDays   int       `json:"streak_days"`

	// Decaying counter kept for O(1) reads. The canonical recent-mistake
	// representation is RecentMistakes, an exact timestamp list.
	MistakeCount7Days int         `json:"mistake_count_7days"`
	RecentMistakes    []time.Time `json:"recent_mistakes,omitempty"`

	LastSeenAt time.Time `json:"last_seen_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AnswerOutcome is the ephemeral input to the mastery engine. It is not
// persisted by the core itself; quiz and practice keep their own attempt logs.
type AnswerOutcome struct {
	UserID           int64  `json:"user_id"`
	PatternID        string `json:"pattern_id"`
	IsCorrect        bool   `json:"is_correct"`
	TimeTakenSeconds int    `json:"time_taken_seconds"`
	HintsUsed        int    `json:"hints_used"`
}

type SubmitAnswerRequest struct {
	PatternID        string `json:"pattern_id"`
	IsCorrect        *bool  `json:"is_correct"`
	TimeTakenSeconds int    `json:"time_taken_seconds"`
	HintsUsed        int    `json:"hints_used"`
}

type SubmitAnswerResponse struct {
	Success bool          `json:"success"`
	Mastery MasteryRecord `json:"mastery"`
}

type OverviewResponse struct {
	OverallMasteryPercentage int      `json:"overall_mastery_percentage"`
	CurrentStreakDays        int      `json:"current_streak_days"`
	ProblematicPatternIDs    []string `json:"problematic_pattern_ids"`
}

type DueItemsResponse struct {
	PatternIDs []string `json:"pattern_ids"`
}
