package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// SnapshotStore persists the last good collection between sessions. Reads are
// best-effort; a false return means cache miss.
type SnapshotStore interface {
	SaveSnapshot(v any) error
	LoadSnapshot(v any) bool
}

// Snapshot is the serialized form of a successful load.
type Snapshot struct {
	Items   []Item    `json:"items"`
	SavedAt time.Time `json:"saved_at"`
}

// Loader owns the canonical item collection and the fallback chain. Load
// never fails: every failure path degrades to the best available data and a
// short message.
type Loader struct {
	client *Client
	store  SnapshotStore
	log    *zap.Logger
	group  singleflight.Group

	mu          sync.Mutex
	items       []Item
	lastUpdated time.Time
}

// NewLoader builds a loader. store and log may be nil.
func NewLoader(client *Client, store SnapshotStore, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{client: client, store: store, log: log}
}

// Current returns the canonical collection and its last-updated time.
func (l *Loader) Current() ([]Item, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items, l.lastUpdated
}

// Load performs one fetch cycle. Concurrent callers (manual refresh racing
// the periodic timer) share a single in-flight fetch. The shared fetch runs
// detached from any one caller's context: cancelling a caller only stops that
// caller from waiting, so a later Load joining the flight still gets the
// fetch's own result, never a predecessor's cancellation fallback.
func (l *Loader) Load(ctx context.Context) Result {
	ch := l.group.DoChan("feed", func() (any, error) {
		return l.loadOnce(context.WithoutCancel(ctx)), nil
	})

	select {
	case v := <-ch:
		return v.Val.(Result)
	case <-ctx.Done():
		l.log.Info("load superseded", zap.Error(ctx.Err()))
		return l.fallback("Refresh cancelled. Showing last known data.")
	}
}

func (l *Loader) loadOnce(ctx context.Context) Result {
	items, err := l.client.FetchItems(ctx)
	if err == nil && len(items) > 0 {
		now := time.Now()
		l.mu.Lock()
		l.items = items
		l.lastUpdated = now
		l.mu.Unlock()

		if l.store != nil {
			if serr := l.store.SaveSnapshot(Snapshot{Items: items, SavedAt: now}); serr != nil {
				l.log.Warn("snapshot write failed", zap.Error(serr))
			}
		}
		l.log.Info("feed refreshed", zap.Int("items", len(items)))
		return Result{Items: items, LastUpdated: now}
	}

	message := "Feed returned no entries; showing last known data."
	if err != nil {
		message = fmt.Sprintf("Refresh failed: %v. Showing last known data.", err)
		l.log.Warn("feed refresh failed", zap.Error(err))
	} else {
		l.log.Warn("feed returned no entries")
	}
	return l.fallback(message)
}

// fallback resolves the best available data: previous in-memory state, then
// the persisted snapshot, then built-in placeholders.
func (l *Loader) fallback(message string) Result {
	l.mu.Lock()
	previous, updated := l.items, l.lastUpdated
	l.mu.Unlock()
	if len(previous) > 0 {
		return Result{Items: previous, LastUpdated: updated, Message: message}
	}

	var snap Snapshot
	if l.store != nil && l.store.LoadSnapshot(&snap) && len(snap.Items) > 0 {
		l.log.Info("serving cache snapshot", zap.Int("items", len(snap.Items)))
		return Result{Items: snap.Items, LastUpdated: snap.SavedAt, Message: message}
	}

	return Result{Items: PlaceholderItems(), Message: message}
}
