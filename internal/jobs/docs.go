// Package jobs runs the dispatch simulation in the background.
//
// Jobs are scheduled with github.com/robfig/cron/v3:
//
//  1. CourierAssignmentJob assigns the oldest Created order to a Ready courier
//  2. CourierMovementJob moves Busy couriers and completes arrived orders
//
// # Usage
//
//	manager := jobs.NewJobManager(schedules, moveHandler, assignHandler, jobMetrics, logger)
//	if err := manager.StartAll(ctx); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron specs with seconds and default to "* * * * * *".
// A run still in progress when the next one is due makes that one skip.
//
// # Errors
//
// The assignment job counts "no order" and "no free courier" as idle runs.
// Any other error is logged and counted as a failed run.
package jobs
