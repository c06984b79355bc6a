package recommend

import (
	"testing"

	"github.com/google/uuid"
)

func TestDayPlanNumbersDays(t *testing.T) {
	items := make([]PlanItem, 10)
	for i := range items {
		items[i] = PlanItem{Id: uuid.New(), Title: "ex", DurationMinutes: 5}
	}

	plan := DayPlan(items, 7)
	if len(plan) != 7 {
		t.Fatalf("plan length = %d, want 7", len(plan))
	}
	for i, day := range plan {
		if day.DayNumber != i+1 {
			t.Errorf("day %d numbered %d", i, day.DayNumber)
		}
		if day.ExerciseId != items[i].Id {
			t.Errorf("day %d lost ranked order", i+1)
		}
	}
}

func TestDayPlanShortList(t *testing.T) {
	items := []PlanItem{{Id: uuid.New(), Title: "only", DurationMinutes: 3}}
	plan := DayPlan(items, 7)
	if len(plan) != 1 || plan[0].DayNumber != 1 {
		t.Errorf("short input yields a short plan, got %v", plan)
	}
}

func TestDurationLabel(t *testing.T) {
	if got := DurationLabel(0); got != "1 min" {
		t.Errorf("DurationLabel(0) = %q", got)
	}
	if got := DurationLabel(12); got != "12 min" {
		t.Errorf("DurationLabel(12) = %q", got)
	}
}
