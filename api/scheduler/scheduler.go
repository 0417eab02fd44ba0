package scheduler

import (
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/signbridge/interview-api/api"
	"github.com/signbridge/interview-api/api/realtime"
	"github.com/signbridge/interview-api/databases"
)

const defaultRetentionDays = 30

// Scheduler handles periodic background jobs for the service
type Scheduler struct {
	cron          *cron.Cron
	StatusDB      databases.StatusCheckDatabase
	Hub           *realtime.Hub
	retentionDays int
}

// New creates a new scheduler instance
func New(statusDB databases.StatusCheckDatabase, hub *realtime.Hub) *Scheduler {
	days := defaultRetentionDays
	if v := os.Getenv("STATUS_RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}

	return &Scheduler{
		cron:          cron.New(cron.WithLocation(time.UTC)),
		StatusDB:      statusDB,
		Hub:           hub,
		retentionDays: days,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Sweep expired status checks daily at 3 AM UTC
	_, err := s.cron.AddFunc("0 3 * * *", s.sweepStatusChecks)
	if err != nil {
		zap.S().Errorw("failed to register status sweep job", "error", err)
	}

	// Log hub occupancy hourly
	_, err = s.cron.AddFunc("0 * * * *", s.logConnectionCount)
	if err != nil {
		zap.S().Errorw("failed to register connection count job", "error", err)
	}

	s.cron.Start()
	zap.S().Infow("scheduler started", "statusRetentionDays", s.retentionDays)
}

// Stop halts all scheduled jobs
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) sweepStatusChecks() {
	ctx, cancel := api.WithQueryTimeout(nil)
	defer cancel()

	cutoff := time.Now().UTC().AddDate(0, 0, -s.retentionDays)
	deleted, err := s.StatusDB.DeleteMany(ctx, bson.M{"timestamp": bson.M{"$lt": cutoff}})
	if err != nil {
		zap.S().Errorw("failed to sweep status checks", "error", err)
		return
	}
	if deleted > 0 {
		zap.S().Infow("swept expired status checks", "deleted", deleted, "cutoff", cutoff)
	}
}

func (s *Scheduler) logConnectionCount() {
	zap.S().Infow("live connections", "count", s.Hub.Len())
}
