package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartSeasonScheduler runs a daily job that re-resolves the current season
// so the new season row already exists when the year rolls over, instead of
// being created on the first September write. Resolution is idempotent, so
// running it repeatedly is harmless.
func (s *SeasonService) StartSeasonScheduler() {
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("[SEASON] failed to start scheduler: %v", err)
		return
	}
	sched.Start()

	_, err = sched.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(func() {
			season, err := s.ResolveCurrentSeason()
			if err != nil {
				log.Printf("[SEASON] scheduled resolution failed: %v", err)
				return
			}
			log.Printf("[SEASON] current season is %s", season.Name)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		log.Printf("[SEASON] failed to schedule season resolution: %v", err)
	}
}
