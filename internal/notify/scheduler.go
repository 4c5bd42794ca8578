package notify

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the reminder service on two independent cron
// entries: the daily birthday scan and the yearly unsubscribe nag.
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler registers both jobs at 11:00 in the given location.
func NewScheduler(svc *Service, loc *time.Location) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(loc))

	_, err := c.AddFunc("0 11 * * *", func() {
		svc.SendBirthdayReminders(context.Background())
	})
	if err != nil {
		return nil, err
	}

	// 13 December, once a year.
	_, err = c.AddFunc("0 11 13 12 *", func() {
		svc.SendUnsubscribeReminder(context.Background())
	})
	if err != nil {
		return nil, err
	}

	return &Scheduler{cron: c}, nil
}

// Start launches the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("scheduler started")
}

// Stop waits for any running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
