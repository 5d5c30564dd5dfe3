package models

import "time"

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

var ValidDifficulties = map[Difficulty]bool{
	DifficultyBeginner:     true,
	DifficultyIntermediate: true,
	DifficultyAdvanced:     true,
}

type Category string

const (
	CategoryBullish Category = "bullish"
	CategoryBearish Category = "bearish"
	CategoryNeutral Category = "neutral"
)

var ValidCategories = map[Category]bool{
	CategoryBullish: true,
	CategoryBearish: true,
	CategoryNeutral: true,
}

// QuickTest is the single multiple-choice question embedded in each
// catalog pattern. It is the question source for quiz and practice modes.
type QuickTest struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
	Explanation        string   `json:"explanation"`
}

// Pattern is a catalog entry. The catalog is inert reference data: it is
// seeded once and never computed or mutated by the mastery core.
type Pattern struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Difficulty        Difficulty `json:"difficulty"`
	Category          Category   `json:"category"`
	Meaning           string     `json:"meaning"`
	KeyRules          []string   `json:"key_rules"`
	NeedsConfirmation bool       `json:"needs_confirmation"`
	Scenarios         []string   `json:"scenarios"`
	ActionProtocol    string     `json:"action_protocol"`
	RealWorldContext  string     `json:"real_world_context"`
	Confusions        []string   `json:"confusions,omitempty"`
	QuickTest         *QuickTest `json:"quick_test,omitempty"`
	CandleGlyph       string     `json:"candle_glyph,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type PatternListRequest struct {
	Difficulty *string
	Category   *string
	Search     *string
	Limit      int
	Offset     int
}

type PatternDetailResponse struct {
	Pattern Pattern        `json:"pattern"`
	Mastery *MasteryRecord `json:"mastery,omitempty"`
}
