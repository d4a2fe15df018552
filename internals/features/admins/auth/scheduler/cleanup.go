package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// IdleSweeper diimplementasikan store yang tidak punya TTL sendiri (db, memory).
type IdleSweeper interface {
	DeleteIdleBefore(ctx context.Context, before time.Time) (int64, error)
}

// SweepOnce menghapus sesi yang idle lebih lama dari idleTimeout.
func SweepOnce(ctx context.Context, sweeper IdleSweeper, idleTimeout time.Duration, now time.Time, log *zap.Logger) int64 {
	n, err := sweeper.DeleteIdleBefore(ctx, now.Add(-idleTimeout))
	if err != nil {
		log.Warn("session#cleanup failed", zap.Error(err))
		return 0
	}
	if n > 0 {
		log.Info("session#cleanup", zap.Int64("deleted", n))
	}
	return n
}

// StartSessionCleanupScheduler berhenti saat ctx dibatalkan.
func StartSessionCleanupScheduler(ctx context.Context, sweeper IdleSweeper, idleTimeout, interval time.Duration, log *zap.Logger) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info("session#cleanup stopped")
				return
			case t := <-ticker.C:
				SweepOnce(ctx, sweeper, idleTimeout, t, log)
			}
		}
	}()
}
