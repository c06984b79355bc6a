package recommend

import (
	"fmt"

	"github.com/google/uuid"
)

// PlanItem is the slice of an exercise the day plan needs.
type PlanItem struct {
	Id              uuid.UUID
	Title           string
	DurationMinutes int
}

type PlanDay struct {
	DayNumber       int
	ExerciseId      uuid.UUID
	Title           string
	DurationMinutes int
}

// DayPlan numbers the first `length` ranked items as consecutive days. Fewer
// items than days simply yields a shorter plan.
func DayPlan(items []PlanItem, length int) []PlanDay {
	if len(items) > length {
		items = items[:length]
	}
	plan := make([]PlanDay, len(items))
	for i, item := range items {
		plan[i] = PlanDay{
			DayNumber:       i + 1,
			ExerciseId:      item.Id,
			Title:           item.Title,
			DurationMinutes: item.DurationMinutes,
		}
	}
	return plan
}

// DurationLabel renders the human label for an exercise duration.
func DurationLabel(minutes int) string {
	if minutes < 1 {
		return "1 min"
	}
	return fmt.Sprintf("%d min", minutes)
}
