package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/pattern-mastery/backend/internal/mastery"
	"github.com/pattern-mastery/backend/internal/models"
)

// RecordGetter fetches a user's mastery record for a pattern so detail
// responses can include learning state. Satisfied by the mastery service.
type RecordGetter interface {
	GetRecord(userID int64, patternID string) (*models.MasteryRecord, error)
}

type Service struct {
	store   *Store
	mastery RecordGetter
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// SetMasteryService injects the mastery collaborator for detail responses.
func (s *Service) SetMasteryService(m RecordGetter) {
	s.mastery = m
}

func (s *Service) List(req models.PatternListRequest) ([]models.Pattern, error) {
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 50
	}
	if req.Offset < 0 {
		req.Offset = 0
	}
	return s.store.List(req)
}

func (s *Service) Get(userID int64, patternID string) (*models.PatternDetailResponse, error) {
	pattern, err := s.store.Get(patternID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	resp := &models.PatternDetailResponse{Pattern: *pattern}
	s.attachMastery(resp, userID, patternID)
	return resp, nil
}

// attachMastery adds the caller's mastery record to a detail response when
// one exists. Store failures leave the response without mastery data but
// must not be confused with a simple not-found, so they are logged.
func (s *Service) attachMastery(resp *models.PatternDetailResponse, userID int64, patternID string) {
	if s.mastery == nil {
		return
	}
	record, err := s.mastery.GetRecord(userID, patternID)
	if err != nil {
		if !errors.Is(err, mastery.ErrNotFound) {
			log.Printf("[catalog] failed to load mastery record for %s: %v", patternID, err)
		}
		return
	}
	resp.Mastery = record
}

// Exists reports whether a pattern ID is in the catalog. This is the only
// catalog query the mastery core consumes.
func (s *Service) Exists(patternID string) (bool, error) {
	return s.store.Exists(patternID)
}

// Seed loads the embedded pattern set into an empty catalog. Idempotent:
// a non-empty catalog is left untouched.
func (s *Service) Seed() error {
	count, err := s.store.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, p := range SeedPatterns {
		if err := s.store.Insert(p); err != nil {
			return fmt.Errorf("seed pattern %q: %w", p.ID, err)
		}
	}

	log.Printf("[catalog] seeded %d patterns", len(SeedPatterns))
	return nil
}
