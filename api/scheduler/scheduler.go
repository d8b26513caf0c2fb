package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/linesmerrill/vehicle-registry-api/api"
	"github.com/linesmerrill/vehicle-registry-api/databases"
)

// Scheduler handles periodic background jobs: rotating the request metrics
// window and logging how many records each collection holds
type Scheduler struct {
	cron    *cron.Cron
	Metrics *api.MetricsCollector
	VDB     databases.VehicleDatabase
	UDB     databases.UserDatabase

	metricsSpec   string
	inventorySpec string
}

// NewScheduler creates a new scheduler instance. The metrics window is
// rotated every metricsWindow and the inventory is logged on inventorySpec,
// a standard cron expression or descriptor such as "@every 15m".
func NewScheduler(
	mc *api.MetricsCollector,
	vDB databases.VehicleDatabase,
	uDB databases.UserDatabase,
	metricsWindow time.Duration,
	inventorySpec string,
) *Scheduler {
	return &Scheduler{
		cron:          cron.New(cron.WithLocation(time.UTC)),
		Metrics:       mc,
		VDB:           vDB,
		UDB:           uDB,
		metricsSpec:   "@every " + metricsWindow.String(),
		inventorySpec: inventorySpec,
	}
}

// Start registers all jobs and begins the scheduler. A job whose schedule
// cannot be parsed is reported and the scheduler is not started.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.metricsSpec, s.rotateMetrics); err != nil {
		zap.S().Errorw("failed to register metrics rotation job", "spec", s.metricsSpec, "error", err)
		return err
	}
	if _, err := s.cron.AddFunc(s.inventorySpec, s.logInventory); err != nil {
		zap.S().Errorw("failed to register inventory job", "spec", s.inventorySpec, "error", err)
		return err
	}

	s.cron.Start()
	zap.S().Info("scheduler started")
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("scheduler stopped")
}

func (s *Scheduler) rotateMetrics() {
	s.Metrics.RotateWindow()
	zap.S().Debug("metrics window rotated")
}

func (s *Scheduler) logInventory() {
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	vehicles, users, err := s.Inventory(ctx)
	if err != nil {
		zap.S().Errorw("failed to count records", "error", err)
		return
	}
	zap.S().Infow("inventory", "vehicles", vehicles, "users", users)
}

// Inventory returns the number of stored vehicles and users
func (s *Scheduler) Inventory(ctx context.Context) (vehicles, users int64, err error) {
	vehicles, err = s.VDB.CountDocuments(ctx)
	if err != nil {
		return 0, 0, err
	}
	users, err = s.UDB.CountDocuments(ctx)
	if err != nil {
		return 0, 0, err
	}
	return vehicles, users, nil
}
