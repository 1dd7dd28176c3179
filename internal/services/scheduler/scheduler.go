package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/geekflex/geekflex-api/internal/services/reconcile"
	"github.com/robfig/cron/v3"
)

// Reconciler runs one refresh pass for a category.
type Reconciler interface {
	ReconcileCategory(ctx context.Context, category reconcile.Category) error
}

// Scheduler drives periodic reconcile passes on cron schedules. Each
// category runs as its own job so one category's failure never blocks
// the others.
type Scheduler struct {
	cron       *cron.Cron
	reconciler Reconciler
	jobTimeout time.Duration
}

func New(reconciler Reconciler, jobTimeout time.Duration) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(cron.DefaultLogger)),
		),
		reconciler: reconciler,
		jobTimeout: jobTimeout,
	}
}

// AddCategory registers a category's refresh job under its cron spec.
func (s *Scheduler) AddCategory(category reconcile.Category) error {
	_, err := s.cron.AddFunc(category.CronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
		defer cancel()

		if err := s.reconciler.ReconcileCategory(ctx, category); err != nil {
			log.Printf("[ERROR] Scheduled reconcile failed for category %s: %v", category.Name, err)
			return
		}
	})
	if err != nil {
		return err
	}
	log.Printf("[INFO] Scheduled category %s (%s)", category.Name, category.CronSpec)
	return nil
}

// Start begins running registered jobs in their own goroutines.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Printf("[INFO] Reconcile scheduler started with %d jobs", len(s.cron.Entries()))
}

// Stop halts scheduling and waits for in-flight jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("[INFO] Reconcile scheduler stopped")
}
