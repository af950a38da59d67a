package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/smart-weather/internal/weather"
)

// Scheduler periodically re-resolves tracked destinations and regenerates
// their forecasts so the caches stay warm across TTL expiries.
type Scheduler struct {
	scheduler    *gocron.Scheduler
	service      *weather.Service
	destinations []string
	interval     time.Duration
	forecastDays int
}

// New creates a new Scheduler.
func New(destinations []string, interval time.Duration, forecastDays int, service *weather.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler:    s,
		service:      service,
		destinations: destinations,
		interval:     interval,
		forecastDays: forecastDays,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	if len(s.destinations) == 0 {
		log.Println("scheduler: no tracked destinations; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 60
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: running forecast refresh job")

		var wg sync.WaitGroup
		for _, dest := range s.destinations {
			dest := dest
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				s.service.Warm(ctx, dest, s.forecastDays)
			}()
		}
		wg.Wait()
		log.Println("scheduler: completed forecast refresh job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
