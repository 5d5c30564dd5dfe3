package models

import "time"

// ── Quiz Types ───────────────────────────────────────────

type QuizQuestion struct {
	PatternID    string     `json:"pattern_id"`
	PatternName  string     `json:"pattern_name"`
	QuestionType string     `json:"question_type"`
	Question     string     `json:"question"`
	Options      []string   `json:"options"`
	Difficulty   Difficulty `json:"difficulty"`
}

type QuizAttempt struct {
	ID               int64      `json:"id"`
	UserID           int64      `json:"user_id"`
	PatternID        string     `json:"pattern_id"`
	QuestionType     string     `json:"question_type"`
	DifficultyLevel  Difficulty `json:"difficulty_level"`
	IsCorrect        bool       `json:"is_correct"`
	TimeTakenSeconds int        `json:"time_taken_seconds"`
	HintsUsed        int        `json:"hints_used"`
	CreatedAt        time.Time  `json:"created_at"`
}

type QuizSubmitRequest struct {
	PatternID        string `json:"pattern_id"`
	QuestionType     string `json:"question_type"`
	DifficultyLevel  string `json:"difficulty_level"`
	SelectedAnswer   *int   `json:"selected_answer"`
	TimeTakenSeconds int    `json:"time_taken_seconds"`
	HintsUsed        int    `json:"hints_used"`
}

type QuizSubmitResponse struct {
	Correct     bool          `json:"correct"`
	Explanation string        `json:"explanation"`
	Mastery     MasteryRecord `json:"mastery"`
}

// ── Practice Types ───────────────────────────────────────

type PracticeMode string

const (
	ModeEndless  PracticeMode = "endless"
	ModeTimed    PracticeMode = "timed"
	ModeMistakes PracticeMode = "mistakes"
	ModeWeakSet  PracticeMode = "weak_set"
)

var ValidPracticeModes = map[PracticeMode]bool{
	ModeEndless:  true,
	ModeTimed:    true,
	ModeMistakes: true,
	ModeWeakSet:  true,
}

type PracticePattern struct {
	Pattern
	MasteryPercentage *float64 `json:"mastery_percentage,omitempty"`
	MistakeCount      *int     `json:"mistake_count,omitempty"`
}

type PracticeSubmitRequest struct {
	PatternID        string `json:"pattern_id"`
	SelectedAnswer   *int   `json:"selected_answer"`
	TimeTakenSeconds int    `json:"time_taken_seconds"`
}

type PracticeSession struct {
	ID                int64        `json:"id"`
	UserID            int64        `json:"user_id"`
	Mode              PracticeMode `json:"mode"`
	PatternsAttempted int          `json:"patterns_attempted"`
	CorrectCount      int          `json:"correct_count"`
	IncorrectCount    int          `json:"incorrect_count"`
	DurationSeconds   int          `json:"duration_seconds"`
	CreatedAt         time.Time    `json:"created_at"`
}

type SaveSessionRequest struct {
	Mode              string `json:"mode"`
	PatternsAttempted int    `json:"patterns_attempted"`
	CorrectCount      int    `json:"correct_count"`
	IncorrectCount    int    `json:"incorrect_count"`
	DurationSeconds   int    `json:"duration_seconds"`
}

type SaveSessionResponse struct {
	Success bool            `json:"success"`
	Session PracticeSession `json:"session"`
}
