package stats

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

const mistakeRetention = 7 * 24 * time.Hour

// MistakePruner deletes mistake timestamps older than a cutoff. Satisfied
// by the mastery store.
type MistakePruner interface {
	PruneMistakes(olderThan time.Time) (int64, error)
}

// Scheduler runs the daily maintenance tasks: rolling stale daily counters
// over to zero and pruning mistake rows the 7-day ranker window can no
// longer see.
type Scheduler struct {
	scheduler *gocron.Scheduler
	store     *Store
	pruner    MistakePruner
}

func NewScheduler(store *Store, pruner MistakePruner) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		store:     store,
		pruner:    pruner,
	}
}

// Start registers the maintenance jobs and runs them in the background.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Day().At("00:05").Do(s.runMaintenance)
	s.scheduler.StartAsync()
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) runMaintenance() {
	reset, err := s.store.ResetStaleDailyCounts()
	if err != nil {
		log.Printf("[scheduler] failed to reset daily counts: %v", err)
	} else if reset > 0 {
		log.Printf("[scheduler] reset daily counts for %d users", reset)
	}

	pruned, err := s.pruner.PruneMistakes(time.Now().Add(-mistakeRetention))
	if err != nil {
		log.Printf("[scheduler] failed to prune mistakes: %v", err)
	} else if pruned > 0 {
		log.Printf("[scheduler] pruned %d stale mistake rows", pruned)
	}
}
