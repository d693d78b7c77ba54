// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field schedules with
// seconds) and log through zap.
//
// # Available Jobs
//
// 1. OrderExpiryJob - unpublishes open orders whose deadline has passed, so
// they drop out of listings and recommendations. The order status is kept.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expireOrdersHandler, cfg.OrderExpirySchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Orders changed
// concurrently by users are skipped by the command handler.
package jobs
