// File: internal/jobs/resource_index.go
package jobs

import (
	"context"
	"time"

	"revert_connect_backend/internal/config"
	"revert_connect_backend/internal/resource"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	resourceIndexBatchSize = 200
	resourceIndexTimeout   = 10 * time.Minute
)

// ResourceSyncer rebuilds the resource search index from the store.
type ResourceSyncer interface {
	Enabled() bool
	SyncAll(ctx context.Context, batchSize int, refresh string) (resource.SyncStats, error)
}

// ResourceIndexJob periodically re-syncs resources into Elasticsearch so
// documents missed by best-effort indexing on create catch up.
type ResourceIndexJob struct {
	syncer        ResourceSyncer
	logger        *zap.Logger
	cfg           *config.Config
	cronScheduler *cron.Cron
}

// NewResourceIndexJob creates a new ResourceIndexJob.
func NewResourceIndexJob(syncer ResourceSyncer, logger *zap.Logger, cfg *config.Config) *ResourceIndexJob {
	cronLog := NewCronLogger(logger.Named("cron"))
	scheduler := cron.New(
		cron.WithLogger(cronLog),
		cron.WithChain(cron.SkipIfStillRunning(cronLog)),
	)
	return &ResourceIndexJob{
		syncer:        syncer,
		logger:        logger.Named("ResourceIndexJob"),
		cfg:           cfg,
		cronScheduler: scheduler,
	}
}

// SetupAndStart schedules and starts the cron job.
// Nothing is scheduled when search is disabled or no schedule is configured.
func (j *ResourceIndexJob) SetupAndStart() error {
	if j.syncer == nil || !j.syncer.Enabled() {
		j.logger.Info("Resource search is disabled; index job will not run.")
		return nil
	}
	jobSpec := j.cfg.ResourceIndexJobSchedule
	if jobSpec == "" {
		j.logger.Warn("Resource index job schedule not defined (RESOURCE_INDEX_JOB_SCHEDULE). Job will not run.")
		return nil
	}

	jobID, err := j.cronScheduler.AddFunc(jobSpec, j.Run)
	if err != nil {
		j.logger.Error("Failed to schedule resource index job", zap.String("spec", jobSpec), zap.Error(err))
		return err
	}

	j.logger.Info("Resource index job scheduled", zap.String("spec", jobSpec), zap.Any("jobID", jobID))
	j.cronScheduler.Start()
	return nil
}

// Run performs one sync.
func (j *ResourceIndexJob) Run() {
	j.logger.Info("Starting resource index job run...")
	ctx, cancel := context.WithTimeout(context.Background(), resourceIndexTimeout)
	defer cancel()

	stats, err := j.syncer.SyncAll(ctx, resourceIndexBatchSize, "false")
	if err != nil {
		j.logger.Error("Resource index job run failed", zap.Error(err),
			zap.Int("synced", stats.Synced), zap.Int("failed", stats.Failed))
		return
	}
	j.logger.Info("Resource index job run completed", zap.Int("synced", stats.Synced), zap.Int("batches", stats.Batches))
}

// Stop gracefully stops the cron scheduler.
func (j *ResourceIndexJob) Stop() {
	if j.cronScheduler == nil {
		return
	}
	j.logger.Info("Stopping resource index job scheduler...")
	stopCtx := j.cronScheduler.Stop()
	select {
	case <-stopCtx.Done():
		j.logger.Info("Resource index job scheduler stopped gracefully.")
	case <-time.After(10 * time.Second):
		j.logger.Warn("Resource index job scheduler stop timed out.")
	}
}
