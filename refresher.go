package pathalerts

import (
	"context"
	"sync"
	"time"

	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/internal"
)

// Refresher refreshes a FeedCache on a fixed interval
type Refresher struct {
	cache    *FeedCache
	interval time.Duration

	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	done      chan struct{}
}

// NewRefresher creates a refresher; a non-positive interval defaults to one minute
func NewRefresher(cache *FeedCache, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Refresher{
		cache:    cache,
		interval: interval,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start refreshes immediately and then every interval until Stop or ctx is done
func (r *Refresher) Start(ctx context.Context) {
	r.startOnce.Do(func() {
		go r.run(ctx)
	})
}

// Stop ends the refresh loop and waits for it to exit
func (r *Refresher) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	started := true
	r.startOnce.Do(func() {
		started = false
		close(r.done)
	})
	if started {
		<-r.done
	}
}

func (r *Refresher) run(ctx context.Context) {
	defer close(r.done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.refresh(ctx)
	for {
		select {
		case <-ticker.C:
			r.refresh(ctx)
		case <-r.stopCh:
			internal.Debugf("refresher stopped")
			return
		case <-ctx.Done():
			return
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()
	// errors are logged and kept by the cache
	_ = r.cache.Refresh(ctx)
}
