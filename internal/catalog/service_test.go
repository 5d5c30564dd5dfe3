package catalog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pattern-mastery/backend/internal/mastery"
	"github.com/pattern-mastery/backend/internal/models"
)

type stubRecordGetter struct {
	record *models.MasteryRecord
	err    error
}

func (s *stubRecordGetter) GetRecord(userID int64, patternID string) (*models.MasteryRecord, error) {
	return s.record, s.err
}

func TestAttachMastery(t *testing.T) {
	record := &models.MasteryRecord{UserID: 1, PatternID: "hammer", TimesSeen: 3}

	svc := NewService(nil)
	svc.SetMasteryService(&stubRecordGetter{record: record})

	resp := &models.PatternDetailResponse{}
	svc.attachMastery(resp, 1, "hammer")
	if resp.Mastery != record {
		t.Error("mastery record not attached")
	}
}

func TestAttachMasteryNoRecord(t *testing.T) {
	svc := NewService(nil)
	svc.SetMasteryService(&stubRecordGetter{err: fmt.Errorf("%w: pattern", mastery.ErrNotFound)})

	resp := &models.PatternDetailResponse{}
	svc.attachMastery(resp, 1, "hammer")
	if resp.Mastery != nil {
		t.Error("mastery attached despite not-found")
	}
}

func TestAttachMasteryStoreFailure(t *testing.T) {
	// An unexpected store error degrades to no mastery data without
	// failing the detail response.
	svc := NewService(nil)
	svc.SetMasteryService(&stubRecordGetter{err: errors.New("connection refused")})

	resp := &models.PatternDetailResponse{}
	svc.attachMastery(resp, 1, "hammer")
	if resp.Mastery != nil {
		t.Error("mastery attached despite store failure")
	}
}

func TestAttachMasteryWithoutCollaborator(t *testing.T) {
	svc := NewService(nil)

	resp := &models.PatternDetailResponse{}
	svc.attachMastery(resp, 1, "hammer")
	if resp.Mastery != nil {
		t.Error("mastery attached with no collaborator wired")
	}
}
