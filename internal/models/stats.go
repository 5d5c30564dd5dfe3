package models

import "time"

// UserStats is the per-user aggregate row. Live metrics (overall mastery,
// current streak) are recomputed from mastery records on read; this row
// persists only what cannot be derived: the longest streak ever reached,
// the daily goal, and today's progress.
type UserStats struct {
	ID                int64      `json:"id"`
	UserID            int64      `json:"user_id"`
	LongestStreakDays int        `json:"longest_streak_days"`
	DailyGoalPatterns int        `json:"daily_goal_patterns"`
	PatternsToday     int        `json:"patterns_today"`
	LastActivityAt    *time.Time `json:"last_activity_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type StatsResponse struct {
	OverallMasteryPercentage int  `json:"overall_mastery_percentage"`
	CurrentStreakDays        int  `json:"current_streak_days"`
	LongestStreakDays        int  `json:"longest_streak_days"`
	DailyGoalPatterns        int  `json:"daily_goal_patterns"`
	PatternsToday            int  `json:"patterns_today"`
	DailyGoalReached         bool `json:"daily_goal_reached"`
	PatternsTracked          int  `json:"patterns_tracked"`
	PatternsMastered         int  `json:"patterns_mastered"`
}

type SetDailyGoalRequest struct {
	Target int `json:"target"`
}
