package mastery

import (
	"math"
	"testing"
	"time"

	"github.com/pattern-mastery/backend/internal/models"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func correctOutcome() models.AnswerOutcome {
	return models.AnswerOutcome{UserID: 1, PatternID: "hammer", IsCorrect: true, TimeTakenSeconds: 10}
}

func wrongOutcome() models.AnswerOutcome {
	o := correctOutcome()
	o.IsCorrect = false
	return o
}

func TestApplyFirstAttemptCorrect(t *testing.T) {
	rec := Apply(nil, correctOutcome(), testNow)

	if rec.EaseFactor != 2.5 {
		t.Errorf("ease = %f, want 2.5", rec.EaseFactor)
	}
	if rec.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1", rec.IntervalDays)
	}
	if !rec.DueAt.Equal(testNow.Add(24 * time.Hour)) {
		t.Errorf("dueAt = %v, want now+1d", rec.DueAt)
	}
	if rec.MasteryPercentage != 100 {
		t.Errorf("mastery = %f, want 100", rec.MasteryPercentage)
	}
	if rec.Status != models.StatusLearning {
		t.Errorf("status = %s, want learning", rec.Status)
	}
	if rec.StreakDays != 1 {
		t.Errorf("streak = %d, want 1", rec.StreakDays)
	}
	if rec.TimesSeen != 1 || rec.TimesCorrect != 1 || rec.TimesIncorrect != 0 {
		t.Errorf("counts = %d/%d/%d, want 1/1/0", rec.TimesSeen, rec.TimesCorrect, rec.TimesIncorrect)
	}
	if len(rec.RecentMistakes) != 0 {
		t.Errorf("recentMistakes = %v, want empty", rec.RecentMistakes)
	}
}

func TestApplyFirstAttemptWrong(t *testing.T) {
	rec := Apply(nil, wrongOutcome(), testNow)

	if rec.EaseFactor != minEaseFactor {
		t.Errorf("ease = %f, want %f", rec.EaseFactor, minEaseFactor)
	}
	if rec.Status != models.StatusNew {
		t.Errorf("status = %s, want new", rec.Status)
	}
	if rec.MasteryPercentage != 0 {
		t.Errorf("mastery = %f, want 0", rec.MasteryPercentage)
	}
	if rec.StreakDays != 0 {
		t.Errorf("streak = %d, want 0", rec.StreakDays)
	}
	if rec.MistakeCount7Days != 1 {
		t.Errorf("mistakeCount = %d, want 1", rec.MistakeCount7Days)
	}
	if len(rec.RecentMistakes) != 1 || !rec.RecentMistakes[0].Equal(testNow) {
		t.Errorf("recentMistakes = %v, want [now]", rec.RecentMistakes)
	}
	if !rec.DueAt.Equal(testNow.Add(24 * time.Hour)) {
		t.Errorf("dueAt = %v, want now+1d", rec.DueAt)
	}
}

func TestApplyTwoCorrectAnswers(t *testing.T) {
	first := Apply(nil, correctOutcome(), testNow)
	later := testNow.Add(24 * time.Hour)
	second := Apply(&first, correctOutcome(), later)

	if math.Abs(second.EaseFactor-2.6) > 1e-9 {
		t.Errorf("ease = %f, want ~2.6", second.EaseFactor)
	}
	// ceil(1 * 2.6) = 3
	if second.IntervalDays != 3 {
		t.Errorf("interval = %d, want 3", second.IntervalDays)
	}
	if !second.DueAt.Equal(later.Add(3 * 24 * time.Hour)) {
		t.Errorf("dueAt = %v, want later+3d", second.DueAt)
	}
	if second.StreakDays != 2 {
		t.Errorf("streak = %d, want 2", second.StreakDays)
	}
	if second.MasteryPercentage != 100 {
		t.Errorf("mastery = %f, want 100", second.MasteryPercentage)
	}
	if second.Status != models.StatusMastered {
		t.Errorf("status = %s, want mastered", second.Status)
	}
}

func TestApplyWrongAnswerResets(t *testing.T) {
	rec := models.MasteryRecord{
		UserID: 1, PatternID: "doji",
		TimesSeen: 9, TimesCorrect: 9,
		MasteryPercentage: 100, Status: models.StatusMastered,
		EaseFactor: 2.9, IntervalDays: 30, StreakDays: 9,
	}

	got := Apply(&rec, wrongOutcome(), testNow)

	if math.Abs(got.EaseFactor-2.7) > 1e-9 {
		t.Errorf("ease = %f, want ~2.7", got.EaseFactor)
	}
	if got.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1 (reset)", got.IntervalDays)
	}
	if got.StreakDays != 0 {
		t.Errorf("streak = %d, want 0 (reset)", got.StreakDays)
	}
	if got.MistakeCount7Days != 1 {
		t.Errorf("mistakeCount = %d, want 1", got.MistakeCount7Days)
	}
	// 100 * 9/10 = 90, still mastered
	if got.MasteryPercentage != 90 {
		t.Errorf("mastery = %f, want 90", got.MasteryPercentage)
	}
	if got.Status != models.StatusMastered {
		t.Errorf("status = %s, want mastered", got.Status)
	}
	if !got.DueAt.Equal(testNow.Add(24 * time.Hour)) {
		t.Errorf("dueAt = %v, want now+1d", got.DueAt)
	}
}

func TestApplyEaseClamps(t *testing.T) {
	// Lower clamp: repeated wrong answers never push ease below 1.3.
	rec := Apply(nil, wrongOutcome(), testNow)
	for i := 0; i < 10; i++ {
		rec = Apply(&rec, wrongOutcome(), testNow.Add(time.Duration(i)*time.Hour))
	}
	if rec.EaseFactor != minEaseFactor {
		t.Errorf("ease after repeated misses = %f, want %f", rec.EaseFactor, minEaseFactor)
	}

	// Upper clamp: repeated correct answers never push ease above 3.0.
	rec = Apply(nil, correctOutcome(), testNow)
	for i := 0; i < 20; i++ {
		rec = Apply(&rec, correctOutcome(), testNow.Add(time.Duration(i)*time.Hour))
	}
	if rec.EaseFactor != maxEaseFactor {
		t.Errorf("ease after repeated correct = %f, want %f", rec.EaseFactor, maxEaseFactor)
	}
}

func TestApplyIntervalGrowsOnCorrect(t *testing.T) {
	rec := Apply(nil, correctOutcome(), testNow)
	prev := rec.IntervalDays
	for i := 0; i < 6; i++ {
		rec = Apply(&rec, correctOutcome(), testNow.Add(time.Duration(i)*24*time.Hour))
		if rec.IntervalDays <= prev {
			t.Fatalf("interval did not grow: %d -> %d at step %d", prev, rec.IntervalDays, i)
		}
		prev = rec.IntervalDays
	}
}

func TestApplyCountingInvariant(t *testing.T) {
	rec := Apply(nil, correctOutcome(), testNow)
	outcomes := []bool{true, false, false, true, true, false, true}
	for i, ok := range outcomes {
		o := correctOutcome()
		o.IsCorrect = ok
		rec = Apply(&rec, o, testNow.Add(time.Duration(i)*time.Hour))
		if rec.TimesSeen != rec.TimesCorrect+rec.TimesIncorrect {
			t.Fatalf("timesSeen %d != correct %d + incorrect %d",
				rec.TimesSeen, rec.TimesCorrect, rec.TimesIncorrect)
		}
	}
	if rec.TimesSeen != 8 || rec.TimesCorrect != 5 || rec.TimesIncorrect != 3 {
		t.Errorf("counts = %d/%d/%d, want 8/5/3", rec.TimesSeen, rec.TimesCorrect, rec.TimesIncorrect)
	}
}

func TestRollingMasteryWindow(t *testing.T) {
	tests := []struct {
		correct, seen int
		want          float64
	}{
		{1, 1, 100},
		{1, 2, 50},
		{3, 10, 30},
		{9, 10, 90},
		// Past the window the divisor is pinned at 10.
		{9, 11, 90},
		{11, 11, 110},
		{15, 20, 150},
	}
	for _, tt := range tests {
		got := rollingMastery(tt.correct, tt.seen)
		if got != tt.want {
			t.Errorf("rollingMastery(%d, %d) = %f, want %f", tt.correct, tt.seen, got, tt.want)
		}
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		pct  float64
		want models.LearningStatus
	}{
		{0, models.StatusNew},
		{29.9, models.StatusNew},
		{30, models.StatusLearning},
		{59.9, models.StatusLearning},
		{60, models.StatusReviewing},
		{84.9, models.StatusReviewing},
		{85, models.StatusMastered},
		{100, models.StatusMastered},
		{110, models.StatusMastered},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.pct); got != tt.want {
			t.Errorf("StatusFor(%f) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestApplyMistakeListTrimmed(t *testing.T) {
	rec := Apply(nil, wrongOutcome(), testNow)
	for i := 1; i < 8; i++ {
		rec = Apply(&rec, wrongOutcome(), testNow.Add(time.Duration(i)*time.Hour))
	}
	if len(rec.RecentMistakes) != recentMistakesKept {
		t.Fatalf("recentMistakes length = %d, want %d", len(rec.RecentMistakes), recentMistakesKept)
	}
	// Oldest kept timestamp should be the 4th mistake (hours +3).
	if !rec.RecentMistakes[0].Equal(testNow.Add(3 * time.Hour)) {
		t.Errorf("oldest kept mistake = %v, want now+3h", rec.RecentMistakes[0])
	}
}

func TestApplyDoesNotMutateExisting(t *testing.T) {
	rec := Apply(nil, wrongOutcome(), testNow)
	before := rec
	beforeMistakes := append([]time.Time(nil), rec.RecentMistakes...)

	Apply(&rec, wrongOutcome(), testNow.Add(time.Hour))

	if rec.TimesSeen != before.TimesSeen || rec.EaseFactor != before.EaseFactor {
		t.Error("Apply mutated its input record")
	}
	if len(rec.RecentMistakes) != len(beforeMistakes) {
		t.Error("Apply mutated the input's mistake list")
	}
}

func TestApplyMistakeCountDecaysOnCorrect(t *testing.T) {
	rec := Apply(nil, wrongOutcome(), testNow)
	rec = Apply(&rec, wrongOutcome(), testNow.Add(time.Hour))
	if rec.MistakeCount7Days != 2 {
		t.Fatalf("mistakeCount = %d, want 2", rec.MistakeCount7Days)
	}

	rec = Apply(&rec, correctOutcome(), testNow.Add(2*time.Hour))
	if rec.MistakeCount7Days != 1 {
		t.Errorf("mistakeCount after correct = %d, want 1", rec.MistakeCount7Days)
	}

	rec = Apply(&rec, correctOutcome(), testNow.Add(3*time.Hour))
	rec = Apply(&rec, correctOutcome(), testNow.Add(4*time.Hour))
	if rec.MistakeCount7Days != 0 {
		t.Errorf("mistakeCount = %d, want 0 (never negative)", rec.MistakeCount7Days)
	}
}
