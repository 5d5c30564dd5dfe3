package catalog

import (
	"testing"

	"github.com/pattern-mastery/backend/internal/models"
)

func TestSeedPatternsIntegrity(t *testing.T) {
	if len(SeedPatterns) == 0 {
		t.Fatal("seed catalog is empty")
	}

	seen := make(map[string]bool)
	for _, p := range SeedPatterns {
		if p.ID == "" || p.Name == "" || p.Meaning == "" {
			t.Errorf("pattern %q missing required fields", p.ID)
		}
		if seen[p.ID] {
			t.Errorf("duplicate pattern ID %q", p.ID)
		}
		seen[p.ID] = true

		if !models.ValidDifficulties[p.Difficulty] {
			t.Errorf("pattern %q has invalid difficulty %q", p.ID, p.Difficulty)
		}
		if !models.ValidCategories[p.Category] {
			t.Errorf("pattern %q has invalid category %q", p.ID, p.Category)
		}
		if len(p.KeyRules) == 0 {
			t.Errorf("pattern %q has no key rules", p.ID)
		}
	}
}

func TestSeedPatternQuickTests(t *testing.T) {
	for _, p := range SeedPatterns {
		if p.QuickTest == nil {
			t.Errorf("pattern %q has no quick test", p.ID)
			continue
		}
		qt := p.QuickTest
		if qt.Question == "" || qt.Explanation == "" {
			t.Errorf("pattern %q quick test missing question or explanation", p.ID)
		}
		if len(qt.Options) < 2 {
			t.Errorf("pattern %q quick test has %d options, want >= 2", p.ID, len(qt.Options))
		}
		if qt.CorrectOptionIndex < 0 || qt.CorrectOptionIndex >= len(qt.Options) {
			t.Errorf("pattern %q correct option index %d out of range", p.ID, qt.CorrectOptionIndex)
		}
	}
}
