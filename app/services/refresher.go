package services

import (
	"context"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/contentcrush/portalcc-sub007/app/dataapi"
)

// Refresher keeps the latest data API snapshot in memory and refreshes
// it on a cron schedule. Handlers always read the cached snapshot; the
// calendar pipeline itself never blocks on the upstream.
type Refresher struct {
	api *dataapi.Client

	mu       sync.RWMutex
	snapshot *dataapi.Snapshot

	cron *cron.Cron
}

// NewRefresher creates a refresher around the given client.
func NewRefresher(api *dataapi.Client) *Refresher {
	return &Refresher{api: api}
}

// Start performs an initial refresh and schedules periodic ones.
func (r *Refresher) Start(schedule string) error {
	r.cron = cron.New()
	_, err := r.cron.AddFunc(schedule, func() {
		if _, err := r.Refresh(context.Background()); err != nil {
			log.Printf("Scheduled snapshot refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	r.cron.Start()
	log.Printf("Snapshot refresher started (schedule: %s)", schedule)

	go func() {
		if _, err := r.Refresh(context.Background()); err != nil {
			log.Printf("Initial snapshot refresh failed: %v", err)
		}
	}()
	return nil
}

// Stop halts the background schedule.
func (r *Refresher) Stop() {
	if r.cron != nil {
		r.cron.Stop()
	}
}

// Refresh fetches a fresh snapshot and stores it. A fetch that completes
// after a newer snapshot has already been stored is discarded: results
// are idempotent, so dropping the stale one is always safe.
func (r *Refresher) Refresh(ctx context.Context) (*dataapi.Snapshot, error) {
	snap, err := r.api.FetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return r.store(snap), nil
}

func (r *Refresher) store(snap *dataapi.Snapshot) *dataapi.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snapshot != nil && r.snapshot.FetchedAt.After(snap.FetchedAt) {
		log.Printf("Discarding stale snapshot %s (superseded by %s)", snap.ID, r.snapshot.ID)
		return r.snapshot
	}
	r.snapshot = snap
	log.Printf("Snapshot %s stored (events=%d tasks=%d projects=%d)",
		snap.ID, len(snap.Data.Events), len(snap.Data.Tasks), len(snap.Data.Projects))
	return snap
}

// Snapshot returns the latest stored snapshot, or nil before the first
// successful refresh.
func (r *Refresher) Snapshot() *dataapi.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}
