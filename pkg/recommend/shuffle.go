package recommend

import (
	"hash/fnv"
	"time"
)

// Linear-congruential generator constants (numerical recipes). Kept exactly
// so a user's shuffled feed stays bit-for-bit stable across deployments.
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
)

type lcg struct {
	state uint32
}

func (g *lcg) next() uint32 {
	g.state = g.state*lcgMultiplier + lcgIncrement
	return g.state
}

// Seed derives the shuffle seed from a caller key (user id, or client IP for
// anonymous requests) and the current hour bucket. The same key within the
// same hour yields the same permutation, which keeps infinite scroll stable.
func Seed(key string, at time.Time) uint32 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32() + uint32(at.Unix()/3600)
}

// Shuffle returns a deterministic permutation of items for the given seed.
// The input slice is not modified.
func Shuffle[T any](items []T, seed uint32) []T {
	out := make([]T, len(items))
	copy(out, items)

	g := lcg{state: seed}
	for i := len(out) - 1; i > 0; i-- {
		j := int(g.next() % uint32(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Page slices items for 1-based page numbers and reports whether more pages
// follow. Out-of-range pages return an empty slice with hasMore=false.
func Page[T any](items []T, page, limit int) ([]T, bool) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		return nil, false
	}

	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}, false
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], end < len(items)
}
