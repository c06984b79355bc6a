package recommend

import (
	"reflect"
	"testing"

	"wellness-be/pkg/wellness"
)

func profileWith(concerns, goals []string, severity, stress int, fear string) wellness.Profile {
	return wellness.Profile{
		Concerns:      concerns,
		Goals:         goals,
		SeverityScore: severity,
		StressLevel:   stress,
		PrimaryFear:   fear,
	}
}

func TestMatchTargetingClause(t *testing.T) {
	p := profileWith([]string{"anxiety"}, []string{"less_anxiety"}, 2, 3, "never_get_better")

	tests := []struct {
		name string
		a    Attrs
		want bool
	}{
		{"tag overlap", Attrs{Tags: []string{"anxiety", "stress"}}, true},
		{"goal overlap", Attrs{GoalTags: []string{"less_anxiety"}}, true},
		{"fear match", Attrs{FearAddressed: "never_get_better"}, true},
		{"no overlap", Attrs{Tags: []string{"performance"}, GoalTags: []string{"body_confidence"}}, false},
		{"different fear", Attrs{FearAddressed: "alone_in_this"}, false},
		{"empty item", Attrs{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(p, tt.a); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchEmptyFearNeverMatchesFearClause(t *testing.T) {
	p := profileWith([]string{"anxiety"}, nil, 2, 3, "")

	if Match(p, Attrs{FearAddressed: ""}) {
		t.Error("item without fearAddressed must not match through the fear clause")
	}
	if !Match(p, Attrs{Tags: []string{"anxiety"}, FearAddressed: ""}) {
		t.Error("item without fearAddressed should still match on tags")
	}
}

func TestMatchSeverityClause(t *testing.T) {
	p := profileWith([]string{"anxiety"}, nil, 3, 0, "")

	if !Match(p, Attrs{Tags: []string{"anxiety"}, SeverityLevels: nil}) {
		t.Error("empty severity set should match any severity")
	}
	if !Match(p, Attrs{Tags: []string{"anxiety"}, SeverityLevels: []int{1, 3}}) {
		t.Error("severity 3 should match a set containing 3")
	}
	if Match(p, Attrs{Tags: []string{"anxiety"}, SeverityLevels: []int{4, 5}}) {
		t.Error("severity 3 must be excluded by a set of {4,5} even with a tag match")
	}
}

type fixture struct {
	name string
	tags []string
}

func fixtureTags(f fixture) []string { return f.tags }

func TestStressFirstStablePartition(t *testing.T) {
	items := []fixture{
		{"a", []string{"performance"}},
		{"b", []string{"stress"}},
		{"c", []string{"communication"}},
		{"d", []string{"anxiety"}},
		{"e", []string{"stress", "anxiety"}},
	}

	high := profileWith([]string{"stress"}, nil, 1, 9, "")
	got := StressFirst(high, items, fixtureTags)
	var order []string
	for _, f := range got {
		order = append(order, f.name)
	}
	want := []string{"b", "d", "e", "a", "c"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("high stress partition = %v, want %v", order, want)
	}

	low := profileWith([]string{"stress"}, nil, 1, 7, "")
	got = StressFirst(low, items, fixtureTags)
	if !reflect.DeepEqual(got, items) {
		t.Errorf("stressLevel 7 is not high stress, order must be untouched")
	}
}

// Submitting {concerns:[stress], severity:occasionally, stressLevel:9} against
// five items where two are stress-tagged and all accept any severity must
// surface the stress pair first and keep all five.
func TestRankPipelineEndToEnd(t *testing.T) {
	p := wellness.BuildProfile(wellness.Answers{
		Concerns:    []string{"stress"},
		Goals:       []string{"healthy_habits"},
		Severity:    "occasionally",
		Duration:    "recently",
		StressLevel: 9,
	})
	if p.SeverityScore != 1 || p.UrgencyScore != 1 || p.StressLevel != 9 {
		t.Fatalf("profile scores = %d/%d/%d, want 1/1/9", p.SeverityScore, p.UrgencyScore, p.StressLevel)
	}

	items := []fixture{
		{"plain1", []string{"healthy_habits_tagless"}},
		{"stress1", []string{"stress"}},
		{"plain2", []string{"confidence"}},
		{"stress2", []string{"stress"}},
		{"plain3", []string{"education"}},
	}
	attrs := func(f fixture) Attrs {
		// all fixtures carry goal tag healthy_habits and open severity
		return Attrs{Tags: f.tags, GoalTags: []string{"healthy_habits"}}
	}

	matched := Filter(p, items, attrs)
	if len(matched) != 5 {
		t.Fatalf("all 5 fixtures match via goal tags, got %d", len(matched))
	}

	ranked := StressFirst(p, matched, fixtureTags)
	var order []string
	for _, f := range ranked {
		order = append(order, f.name)
	}
	want := []string{"stress1", "stress2", "plain1", "plain2", "plain3"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("ranked order = %v, want %v", order, want)
	}
}

func TestTruncate(t *testing.T) {
	items := make([]int, 30)
	if got := Truncate(items, 15); len(got) != 15 {
		t.Errorf("Truncate(30, 15) kept %d items", len(got))
	}
	if got := Truncate(items[:10], 15); len(got) != 10 {
		t.Errorf("Truncate must not pad short lists, got %d", len(got))
	}
	if got := Truncate(items, 0); len(got) != 30 {
		t.Errorf("zero cap disables truncation, got %d", len(got))
	}
}
