// Package recommend holds the content ranking pipeline: must-match filtering
// against a wellness profile, the high-stress partition, day-plan assembly and
// the seeded shuffle used for stable paginated feeds.
package recommend

import "wellness-be/pkg/wellness"

// Attrs is the ranker's view of a content row. Exercises and videos both map
// onto it.
type Attrs struct {
	Tags           []string
	GoalTags       []string
	FearAddressed  string
	SeverityLevels []int
}

// Match applies the must-match rule. An item survives when it targets at
// least one of the profile's concerns, goals or its primary fear, AND its
// severity set either is empty (any severity) or contains the profile's
// severity score. Failing either clause excludes the item outright.
//
// An item with no fearAddressed never matches through the fear clause, even
// against a profile whose primary fear is empty. Assessments always record a
// primary fear, so such items must qualify on tags or goals.
func Match(p wellness.Profile, a Attrs) bool {
	if !intersects(a.Tags, p.Concerns) &&
		!intersects(a.GoalTags, p.Goals) &&
		(a.FearAddressed == "" || a.FearAddressed != p.PrimaryFear) {
		return false
	}
	if len(a.SeverityLevels) == 0 {
		return true
	}
	for _, level := range a.SeverityLevels {
		if level == p.SeverityScore {
			return true
		}
	}
	return false
}

// Filter keeps the items that Match, preserving order.
func Filter[T any](p wellness.Profile, items []T, attrs func(T) Attrs) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Match(p, attrs(item)) {
			out = append(out, item)
		}
	}
	return out
}

// StressFirst moves items tagged stress or anxiety to the front when the
// profile reports high stress. This is a stable partition: relative order
// inside each half is preserved, nothing is re-scored.
func StressFirst[T any](p wellness.Profile, items []T, tags func(T) []string) []T {
	if p.StressLevel <= 7 {
		return items
	}

	front := make([]T, 0, len(items))
	rest := make([]T, 0, len(items))
	for _, item := range items {
		if containsAny(tags(item), "stress", "anxiety") {
			front = append(front, item)
		} else {
			rest = append(rest, item)
		}
	}
	return append(front, rest...)
}

// Truncate caps the list without reordering.
func Truncate[T any](items []T, max int) []T {
	if max > 0 && len(items) > max {
		return items[:max]
	}
	return items
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func containsAny(haystack []string, needles ...string) bool {
	for _, h := range haystack {
		for _, n := range needles {
			if h == n {
				return true
			}
		}
	}
	return false
}
