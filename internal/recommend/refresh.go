package recommend

import (
	"context"
	"time"
)

// Refresher periodically rebuilds an Engine's index from its catalog store.
type Refresher struct {
	engine   *Engine
	interval time.Duration
}

// NewRefresher creates a Refresher. A non-positive interval disables refreshing.
func NewRefresher(engine *Engine, interval time.Duration) *Refresher {
	return &Refresher{engine: engine, interval: interval}
}

// Run rebuilds on every tick until ctx is done. Failed rebuilds are logged and the
// previous index stays live.
func (r *Refresher) Run(ctx context.Context) error {
	if r.interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := r.engine.Rebuild(ctx); err != nil {
				r.engine.logger.Warn().Err(err).Msg("scheduled index refresh failed")
			}
		}
	}
}
