package stats

import (
	"testing"
	"time"

	"github.com/pattern-mastery/backend/internal/mastery"
)

// The service is the mastery core's activity sink; the transition timestamp
// it receives must flow through to the persisted row.
var _ mastery.ActivityRecorder = (*Service)(nil)

func TestSameDay(t *testing.T) {
	base := time.Date(2026, 3, 15, 23, 30, 0, 0, time.UTC)

	if !sameDay(base, base.Add(29*time.Minute)) {
		t.Error("same calendar day reported as different")
	}
	if sameDay(base, base.Add(31*time.Minute)) {
		t.Error("midnight rollover not detected")
	}
	if sameDay(base, base.AddDate(1, 0, 0)) {
		t.Error("same date in a different year treated as same day")
	}
}
