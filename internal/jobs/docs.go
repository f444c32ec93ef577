// Package jobs provides scheduled background tasks for the order workflow.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field schedules with seconds)
// and log through zap.
//
// # Available Jobs
//
// 1. DeliveryRequestExpiryJob - closes delivery requests whose acceptance window passed
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expireHandler, cfg.ExpirySchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed sweep is logged and the next tick tries again. Overlapping runs are skipped.
package jobs
