package cron

import (
	"context"
	"time"
)

// Reloader is implemented by the dashboard snapshot cache.
type Reloader interface {
	Load(ctx context.Context) error
}

// RegisterSnapshotRefresh schedules a periodic reload of the dashboard
// snapshot so derived stats stay close to the live tables even when no
// write has invalidated them.
func RegisterSnapshotRefresh(s *Scheduler, cache Reloader, interval time.Duration) {
	s.AddJob("snapshot_refresh", interval, func(ctx context.Context) error {
		return cache.Load(ctx)
	})
}
