package community

import (
	"math"
	"testing"
	"time"
)

type post struct {
	name string
	eng  Engagement
}

func engOf(p post) Engagement { return p.eng }

func TestTrendingScoreWeights(t *testing.T) {
	e := Engagement{Likes: 3, Comments: 2, Shares: 1}
	if got := TrendingScore(e); got != 8 {
		t.Errorf("TrendingScore = %v, want 8 (likes + 2*comments + shares)", got)
	}
}

func TestHotScoreDecay(t *testing.T) {
	now := time.Now()
	fresh := Engagement{Likes: 10, Comments: 0, CreatedAt: now}
	day := Engagement{Likes: 10, Comments: 0, CreatedAt: now.Add(-24 * time.Hour)}

	if HotScore(fresh, now) <= HotScore(day, now) {
		t.Error("same engagement must score lower as it ages")
	}

	want := 10.0 / math.Pow(25, 1.5)
	if got := HotScore(day, now); math.Abs(got-want) > 1e-9 {
		t.Errorf("HotScore after 24h = %v, want %v", got, want)
	}

	// shares do not feed the hot score
	shared := Engagement{Likes: 10, Shares: 100, CreatedAt: now}
	if HotScore(shared, now) != HotScore(fresh, now) {
		t.Error("shares must not affect the hot score")
	}
}

func TestSortTrendingTieBreak(t *testing.T) {
	now := time.Now()
	posts := []post{
		{"old_high", Engagement{Likes: 10, CreatedAt: now.Add(-2 * time.Hour)}},
		{"new_low", Engagement{Likes: 1, CreatedAt: now}},
		{"new_high", Engagement{Likes: 10, CreatedAt: now.Add(-time.Hour)}},
	}

	SortTrending(posts, engOf)
	want := []string{"new_high", "old_high", "new_low"}
	for i, w := range want {
		if posts[i].name != w {
			t.Fatalf("order[%d] = %s, want %s", i, posts[i].name, w)
		}
	}
}

func TestSortHot(t *testing.T) {
	now := time.Now()
	posts := []post{
		{"aged_popular", Engagement{Likes: 100, CreatedAt: now.Add(-72 * time.Hour)}},
		{"fresh_modest", Engagement{Likes: 5, CreatedAt: now.Add(-10 * time.Minute)}},
	}

	SortHot(posts, now, engOf)
	if posts[0].name != "fresh_modest" {
		t.Errorf("time decay should lift the fresh post, got %s first", posts[0].name)
	}
}
