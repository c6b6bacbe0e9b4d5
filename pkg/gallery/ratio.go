package gallery

import "sync"

// DefaultRatio is the aspect ratio assumed for items without known
// dimensions (folders, tags, unprobed files).
const DefaultRatio = 1.0

// Ratios derives a width/height aspect ratio for every item ID. The ratio is
// width divided by height when both are known positive numbers, otherwise
// DefaultRatio. Ratios is pure: it never mutates its inputs and identical
// inputs produce identical outputs.
func Ratios(ids []string, meta map[string]Meta) map[string]float64 {
	out := make(map[string]float64, len(ids))
	for _, id := range ids {
		out[id] = ratioFor(meta[id])
	}
	return out
}

func ratioFor(m Meta) float64 {
	if m.Width > 0 && m.Height > 0 {
		return float64(m.Width) / float64(m.Height)
	}
	return DefaultRatio
}

// RatioResolver memoizes Ratios by input revision. The item source bumps its
// revision whenever the item list or metadata changes; as long as the
// revision is unchanged the previous ratio map is returned without
// recomputation. The returned map must be treated as read-only.
type RatioResolver struct {
	mu     sync.Mutex
	rev    uint64
	cached map[string]float64
	seen   bool
}

// NewRatioResolver creates an empty resolver.
func NewRatioResolver() *RatioResolver {
	return &RatioResolver{}
}

// Resolve returns the ratio map for the given revision, recomputing only when
// the revision differs from the last call.
func (r *RatioResolver) Resolve(rev uint64, ids []string, meta map[string]Meta) map[string]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seen && rev == r.rev {
		return r.cached
	}

	r.cached = Ratios(ids, meta)
	r.rev = rev
	r.seen = true
	return r.cached
}
