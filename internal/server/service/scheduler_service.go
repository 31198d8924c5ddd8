package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	"golang-portfolio-tracker/internal/entity"
	"golang-portfolio-tracker/internal/server/config"
	"golang-portfolio-tracker/internal/server/repository"
	"golang-portfolio-tracker/pkg/logger"

	"github.com/robfig/cron/v3"
)

// SchedulerService runs the daily refresh: update every holding's price from
// the quote provider, then record a portfolio history point. A ticker polls
// on the configured interval and fires the refresh whenever the cron
// expression says a run is due.
type SchedulerService interface {
	Start(ctx context.Context)
	RunOnce(ctx context.Context) error
	RecentRuns(ctx context.Context) ([]entity.RefreshRun, error)
}

// NewSchedulerService creates a new scheduler service.
func NewSchedulerService(holdingSvc HoldingService, historySvc HistoryService, runRepo repository.RefreshRunRepository, logger *logger.Logger, pollingInterval time.Duration, cfg *config.Config) SchedulerService {
	return &schedulerService{
		holdingSvc:      holdingSvc,
		historySvc:      historySvc,
		runRepo:         runRepo,
		logger:          logger,
		pollingInterval: pollingInterval,
		cronParser:      cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
		cfg:             cfg,
	}
}

type schedulerService struct {
	holdingSvc      HoldingService
	historySvc      HistoryService
	runRepo         repository.RefreshRunRepository
	logger          *logger.Logger
	pollingInterval time.Duration
	cronParser      cron.Parser
	cfg             *config.Config

	mu      sync.Mutex
	nextRun time.Time
}

// Start begins the periodic refresh loop. It blocks until ctx is cancelled.
func (s *schedulerService) Start(ctx context.Context) {
	cronSchedule, err := s.cronParser.Parse(s.cfg.Scheduler.CronExpression)
	if err != nil {
		s.logger.Error("Failed to parse cron expression, scheduler disabled",
			logger.ErrorField(err),
			logger.Field("cron_expression", s.cfg.Scheduler.CronExpression))
		return
	}

	location := time.UTC
	if s.cfg.Scheduler.Timezone != "" {
		loc, err := time.LoadLocation(s.cfg.Scheduler.Timezone)
		if err != nil {
			s.logger.Warn("Unknown timezone, using UTC", logger.Field("timezone", s.cfg.Scheduler.Timezone))
		} else {
			location = loc
		}
	}

	s.mu.Lock()
	s.nextRun = cronSchedule.Next(time.Now().In(location))
	s.mu.Unlock()

	s.logger.Info("Scheduler started",
		logger.Field("cron_expression", s.cfg.Scheduler.CronExpression),
		logger.Field("next_run", s.nextRun))

	ticker := time.NewTicker(s.pollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler service stopping")
			return
		case <-ticker.C:
			now := time.Now().In(location)
			s.mu.Lock()
			due := !now.Before(s.nextRun)
			if due {
				s.nextRun = cronSchedule.Next(now)
			}
			s.mu.Unlock()
			if !due {
				continue
			}
			if err := s.RunOnce(ctx); err != nil {
				s.logger.Error("Scheduled refresh failed", logger.ErrorField(err))
			}
		}
	}
}

// RunOnce executes the full refresh immediately: the price update followed
// by the history record. Each job leaves an audit row.
func (s *schedulerService) RunOnce(ctx context.Context) error {
	if err := s.runPriceUpdate(ctx); err != nil {
		return err
	}
	return s.runHistoryRecord(ctx)
}

// RecentRuns returns the latest audit rows, newest first.
func (s *schedulerService) RecentRuns(ctx context.Context) ([]entity.RefreshRun, error) {
	return s.runRepo.FindRecent(ctx, 20)
}

func (s *schedulerService) runPriceUpdate(ctx context.Context) error {
	run := s.beginRun(ctx, entity.RefreshJobPriceUpdate)

	result, err := s.holdingSvc.UpdateCurrentPrices(ctx)
	if err != nil {
		s.finishRun(ctx, run, err, nil)
		return err
	}

	details, _ := json.Marshal(map[string]interface{}{
		"updated_count": result.UpdatedCount,
		"failed_count":  result.FailedCount,
	})
	s.finishRun(ctx, run, nil, details)
	s.logger.Info("Price update completed",
		logger.Field("updated_count", result.UpdatedCount),
		logger.Field("failed_count", result.FailedCount))
	return nil
}

func (s *schedulerService) runHistoryRecord(ctx context.Context) error {
	run := s.beginRun(ctx, entity.RefreshJobHistoryRecord)

	if err := s.historySvc.RecordTodaysHistory(ctx); err != nil {
		s.finishRun(ctx, run, err, nil)
		return err
	}

	s.finishRun(ctx, run, nil, nil)
	s.logger.Info("History record completed")
	return nil
}

// beginRun writes a running audit row. A nil run is returned when the write
// fails; the job still proceeds.
func (s *schedulerService) beginRun(ctx context.Context, jobType entity.RefreshJobType) *entity.RefreshRun {
	run := &entity.RefreshRun{
		JobType:   jobType,
		Status:    entity.RunStatusRunning,
		StartedAt: time.Now(),
	}
	if err := s.runRepo.Create(ctx, run); err != nil {
		s.logger.Error("Failed to create refresh run", logger.ErrorField(err), logger.Field("job_type", jobType))
		return nil
	}
	return run
}

func (s *schedulerService) finishRun(ctx context.Context, run *entity.RefreshRun, jobErr error, details []byte) {
	if run == nil {
		return
	}
	run.CompletedAt = sql.NullTime{Time: time.Now(), Valid: true}
	if jobErr != nil {
		run.Status = entity.RunStatusFailed
		run.ErrorMessage = sql.NullString{String: jobErr.Error(), Valid: true}
	} else {
		run.Status = entity.RunStatusCompleted
		run.Details = details
	}
	if err := s.runRepo.Update(ctx, run); err != nil {
		s.logger.Error("Failed to update refresh run", logger.ErrorField(err), logger.Field("run_id", run.ID))
	}
}
