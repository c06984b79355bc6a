// Package community scores the social feed. Scores are computed at query
// time over the full matching set; nothing is maintained incrementally.
package community

import (
	"math"
	"sort"
	"time"
)

// Engagement is the scorer's view of a post.
type Engagement struct {
	Likes     int
	Comments  int
	Shares    int
	CreatedAt time.Time
}

// TrendingScore weighs comments double and counts shares once.
func TrendingScore(e Engagement) float64 {
	return float64(e.Likes + 2*e.Comments + e.Shares)
}

// HotScore decays engagement by age: (likes + 2*comments) / (1+hours)^1.5.
// Hours are fractional, so the score drifts between requests; that is
// expected.
func HotScore(e Engagement, now time.Time) float64 {
	hours := now.Sub(e.CreatedAt).Hours()
	if hours < 0 {
		hours = 0
	}
	return float64(e.Likes+2*e.Comments) / math.Pow(1+hours, 1.5)
}

// SortTrending orders items by trending score descending, newest first on
// ties. The sort is performed in place.
func SortTrending[T any](items []T, engagement func(T) Engagement) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := engagement(items[i]), engagement(items[j])
		sa, sb := TrendingScore(a), TrendingScore(b)
		if sa != sb {
			return sa > sb
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// SortHot orders items by hot score descending, newest first on ties. A
// single timestamp is used for the whole sort so ordering is consistent
// within one request.
func SortHot[T any](items []T, now time.Time, engagement func(T) Engagement) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := engagement(items[i]), engagement(items[j])
		sa, sb := HotScore(a, now), HotScore(b, now)
		if sa != sb {
			return sa > sb
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}
