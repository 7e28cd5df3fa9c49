// Package reveal implements one-shot activation of catalog tiles as they
// become visible in the viewport. Each target flips from unactivated to
// activated exactly once, runs its effect, and is dropped from observation.
package reveal

import (
	"go.uber.org/zap"
)

// Strategy selects how targets get activated
type Strategy int

const (
	// Observed activates a target when its reported visibility ratio
	// reaches the threshold
	Observed Strategy = iota
	// Eager activates every target as soon as it is observed. Used when
	// there is no sized viewport to report ratios from (non-TTY output,
	// zero-height terminal).
	Eager
)

// Target is one trackable catalog tile
type Target struct {
	ID             string
	RowSpan        int    // rows the tile occupies in the list
	DeferredSource string // resource not fetched until activation
	Source         string // live resource, set on activation
	Activated      bool
}

// Effect runs once per target at activation time
type Effect func(*Target) error

// Config configures a Tracker
type Config struct {
	Strategy  Strategy
	Threshold float64 // fraction in [0,1]; out-of-range values are clamped
	Effect    Effect  // may be nil
	Logger    *zap.Logger
}

// Tracker watches a set of targets and activates each at most once.
// It is driven from the UI update loop and is not safe for concurrent use.
type Tracker struct {
	strategy  Strategy
	threshold float64
	effect    Effect
	logger    *zap.Logger
	observed  map[string]*Target
	activated int
}

// New creates a tracker. The strategy is fixed for the tracker's lifetime.
func New(cfg Config) *Tracker {
	threshold := cfg.Threshold
	if threshold < 0 {
		threshold = 0
	}
	if threshold > 1 {
		threshold = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		strategy:  cfg.Strategy,
		threshold: threshold,
		effect:    cfg.Effect,
		logger:    logger,
		observed:  make(map[string]*Target),
	}
}

// Observe begins tracking the given targets. Already activated targets are
// skipped. Under the Eager strategy every target is activated immediately
// and unconditionally.
func (t *Tracker) Observe(targets ...*Target) {
	for _, target := range targets {
		if target == nil || target.Activated {
			continue
		}
		if t.strategy == Eager {
			t.activate(target)
			continue
		}
		t.observed[target.ID] = target
	}
}

// Report feeds one visibility ratio from the event source. Reports for
// unknown or already activated targets are ignored, so duplicate or stale
// callbacks are harmless.
func (t *Tracker) Report(id string, ratio float64) {
	target, ok := t.observed[id]
	if !ok {
		return
	}
	if ratio < t.threshold {
		return
	}
	t.activate(target)
}

// activate flips the target, copies the deferred source live, applies the
// effect and stops observing. The transition is irreversible.
func (t *Tracker) activate(target *Target) {
	target.Activated = true
	if target.DeferredSource != "" {
		target.Source = target.DeferredSource
	}
	delete(t.observed, target.ID)
	t.activated++
	if t.effect == nil {
		return
	}
	if err := t.effect(target); err != nil {
		// A failed effect must not disturb other targets
		t.logger.Warn("reveal effect failed",
			zap.String("id", target.ID),
			zap.Error(err))
	}
}

// Observing reports whether the target is still being watched
func (t *Tracker) Observing(id string) bool {
	_, ok := t.observed[id]
	return ok
}

// ObservedCount returns how many targets are still being watched
func (t *Tracker) ObservedCount() int {
	return len(t.observed)
}

// ActivatedCount returns how many targets this tracker has activated
func (t *Tracker) ActivatedCount() int {
	return t.activated
}

// Threshold returns the clamped activation threshold
func (t *Tracker) Threshold() float64 {
	return t.threshold
}
