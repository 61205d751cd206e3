package llm

import (
	"context"
	"sync"
)

// UsageStats is a point-in-time snapshot of accumulated LLM usage.
type UsageStats struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int

	// CostUSD is the estimated spend based on the embedded pricing table.
	// Stays zero for models without a pricing entry.
	CostUSD float64
}

// UsageTracker accumulates token usage across requests for the lifetime
// of the process. Safe for concurrent use.
type UsageTracker struct {
	mu    sync.Mutex
	stats UsageStats
}

// NewUsageTracker creates an empty tracker.
func NewUsageTracker() *UsageTracker {
	return &UsageTracker{}
}

// Record adds one request's outcome to the running totals.
func (t *UsageTracker) Record(modelID string, usage Usage, failed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stats.Requests++
	if failed {
		t.stats.Failures++
		return
	}

	t.stats.InputTokens += usage.InputTokens
	t.stats.OutputTokens += usage.OutputTokens
	if c := LookupCost(modelID); c != nil {
		t.stats.CostUSD += c.Cost(usage.InputTokens, usage.OutputTokens)
	}
}

// Snapshot returns a copy of the current totals.
func (t *UsageTracker) Snapshot() UsageStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// UsageProvider is a decorator that records every call into a tracker.
type UsageProvider struct {
	inner   Provider
	tracker *UsageTracker
}

// WithUsageTracking wraps a Provider so each call updates the tracker.
// A nil tracker returns the provider unwrapped.
func WithUsageTracking(p Provider, tracker *UsageTracker) Provider {
	if tracker == nil {
		return p
	}
	return &UsageProvider{inner: p, tracker: tracker}
}

func (u *UsageProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := u.inner.Generate(ctx, req)
	if resp != nil {
		u.tracker.Record(resp.Model, resp.Usage, err != nil)
	} else {
		u.tracker.Record(u.inner.ModelID(), Usage{}, err != nil)
	}
	return resp, err
}

func (u *UsageProvider) ModelID() string {
	return u.inner.ModelID()
}
