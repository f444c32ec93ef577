package jobs

import (
	"context"

	"orderflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultExpirySchedule sweeps every five seconds, well inside the default 20s window.
const DefaultExpirySchedule = "*/5 * * * * *"

// ExpiryHandler is the part of ExpireDeliveryRequestsCommandHandler the job needs.
type ExpiryHandler interface {
	Handle(ctx context.Context, cmd commands.ExpireDeliveryRequestsCommand) (int, error)
}

// DeliveryRequestExpiryJob closes delivery requests nobody answered in time, so vendors
// can offer the order to another agent.
type DeliveryRequestExpiryJob struct {
	handler  ExpiryHandler
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewDeliveryRequestExpiryJob creates the job. An empty schedule means DefaultExpirySchedule.
// Schedules use the six-field cron format with seconds.
func NewDeliveryRequestExpiryJob(handler ExpiryHandler, schedule string, logger *zap.Logger) *DeliveryRequestExpiryJob {
	if schedule == "" {
		schedule = DefaultExpirySchedule
	}
	return &DeliveryRequestExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With(zap.String("component", "delivery_request_expiry_job")),
	}
}

func (j *DeliveryRequestExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("delivery request expiry job started", zap.String("schedule", j.schedule))
	return nil
}

// Run performs one sweep.
func (j *DeliveryRequestExpiryJob) Run() {
	ctx := context.Background()

	closed, err := j.handler.Handle(ctx, commands.NewExpireDeliveryRequestsCommand(0))
	if err != nil {
		j.logger.Error("delivery request expiry failed", zap.Error(err))
		return
	}
	if closed > 0 {
		j.logger.Info("delivery requests expired", zap.Int("count", closed))
	}
}

// Stop waits for a running sweep to finish.
func (j *DeliveryRequestExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("delivery request expiry job stopped")
}
