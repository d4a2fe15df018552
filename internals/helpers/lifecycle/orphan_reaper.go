package lifecycle

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	helperOSS "schoolsite_backend/internals/helpers/oss"
)

const reaperBatch = 100

// RunOrphanReaper mencoba ulang hapus object yang tercatat di ledger.
func RunOrphanReaper(ctx context.Context, ledger OrphanLedger, blobs helperOSS.BlobService, maxAttempts int, log *zap.Logger) (resolved, failed int, err error) {
	rows, err := ledger.ListPending(ctx, reaperBatch, maxAttempts)
	if err != nil {
		return 0, 0, err
	}
	for _, row := range rows {
		if derr := blobs.DeleteByPublicURL(ctx, row.OrphanedObjectURL); derr != nil {
			failed++
			log.Warn("orphan-reaper#retry failed",
				zap.Stringer("id", row.OrphanedObjectID), zap.String("url", row.OrphanedObjectURL),
				zap.Int("attempts", row.OrphanedObjectAttempts+1), zap.Error(derr))
			if merr := ledger.MarkFailed(ctx, row.OrphanedObjectID, derr.Error()); merr != nil {
				log.Error("orphan-reaper#mark failed", zap.Stringer("id", row.OrphanedObjectID), zap.Error(merr))
			}
			continue
		}
		if merr := ledger.MarkResolved(ctx, row.OrphanedObjectID); merr != nil {
			log.Error("orphan-reaper#mark resolved", zap.Stringer("id", row.OrphanedObjectID), zap.Error(merr))
			continue
		}
		resolved++
	}
	return resolved, failed, nil
}

// StartOrphanReaperCron: panggil dari main.go; Stop() cron saat shutdown.
func StartOrphanReaperCron(ledger OrphanLedger, blobs helperOSS.BlobService, schedule string, maxAttempts int, log *zap.Logger) (*cron.Cron, error) {
	log = log.Named("orphan-reaper")
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
		defer cancel()
		resolved, failed, err := RunOrphanReaper(ctx, ledger, blobs, maxAttempts, log)
		if err != nil {
			log.Error("orphan-reaper#run", zap.Error(err))
			return
		}
		if resolved+failed > 0 {
			log.Info("orphan-reaper#run done", zap.Int("resolved", resolved), zap.Int("failed", failed))
		}
	})
	if err != nil {
		return nil, err
	}
	log.Info("orphan-reaper#started", zap.String("schedule", schedule), zap.Int("max_attempts", maxAttempts))
	c.Start()
	return c, nil
}
