package review

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
)

// WatchWorkbook reloads path through svc whenever its modification time
// changes. It blocks until ctx is cancelled. The file's state when the
// watcher starts is treated as already loaded.
func WatchWorkbook(
	ctx context.Context,
	svc Service,
	path string,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 30 * time.Second
	}
	if logger == nil {
		logger = zap.L()
	}

	log := logger.Named("review.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	lastMod := modTime(path)
	log.Info("workbook watcher started",
		zap.String("path", path),
		zap.Duration("poll_interval", pollInterval),
	)

	for {
		select {
		case <-ctx.Done():
			log.Info("workbook watcher stopped")
			return
		case <-ticker.C:
			mod := modTime(path)
			if mod.IsZero() || mod.Equal(lastMod) {
				continue
			}

			// Remember the new time even on failure so a broken file is
			// not re-read every tick.
			lastMod = mod
			if _, err := svc.Load(ctx, path); err != nil {
				log.Error("reload workbook failed", zap.String("path", path), zap.Error(err))
				continue
			}
			log.Info("workbook reloaded", zap.String("path", path))
		}
	}
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
