package service

import (
	"context"
	"testing"
	"time"

	"wellness-be/internal/dto"
	"wellness-be/internal/entity"
	"wellness-be/internal/repository/specification"

	"github.com/google/uuid"
)

type fakeCheckInRepo struct {
	rows []*entity.CheckIn
}

func (r *fakeCheckInRepo) Create(ctx context.Context, c *entity.CheckIn) error {
	cp := *c
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeCheckInRepo) Upsert(ctx context.Context, c *entity.CheckIn) error {
	for _, row := range r.rows {
		if row.UserId == c.UserId && row.WeekNumber == c.WeekNumber {
			row.Mood = c.Mood
			row.Note = c.Note
			*c = *row
			return nil
		}
	}
	cp := *c
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeCheckInRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CheckIn, error) {
	return r.rows, nil
}

func (r *fakeCheckInRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.rows)), nil
}

func TestCheckInWeeklyUpsert(t *testing.T) {
	userId := uuid.New()
	accountCreated := time.Now().Add(-10 * 24 * time.Hour)
	uow := &fakeUow{
		users:    &fakeUserRepo{user: &entity.User{Id: userId, CreatedAt: accountCreated}},
		checkIns: &fakeCheckInRepo{},
	}
	svc := NewProgressService(&fakeFactory{uow: uow}, &fakeAssessments{}, nil)

	first, err := svc.CheckIn(context.Background(), userId, &dto.CheckInRequest{Mood: 4, Note: "rough week"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.WeekNumber != 2 {
		t.Fatalf("10 days into the account should be week 2, got %d", first.WeekNumber)
	}

	second, err := svc.CheckIn(context.Background(), userId, &dto.CheckInRequest{Mood: 8, Note: "better now"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(uow.checkIns.rows) != 1 {
		t.Fatalf("expected 1 row after two same-week check-ins, got %d", len(uow.checkIns.rows))
	}
	if second.Id != first.Id {
		t.Error("second check-in must reuse the week's row")
	}
	if uow.checkIns.rows[0].Mood != 8 || uow.checkIns.rows[0].Note != "better now" {
		t.Errorf("row not overwritten: mood=%d note=%q", uow.checkIns.rows[0].Mood, uow.checkIns.rows[0].Note)
	}
}

func TestCheckInUnknownAccount(t *testing.T) {
	uow := &fakeUow{
		users:    &fakeUserRepo{},
		checkIns: &fakeCheckInRepo{},
	}
	svc := NewProgressService(&fakeFactory{uow: uow}, &fakeAssessments{}, nil)

	_, err := svc.CheckIn(context.Background(), uuid.New(), &dto.CheckInRequest{Mood: 5})
	if appStatus(t, err).Status != 404 {
		t.Fatal("expected 404 for a missing account")
	}
}

func TestCurrentWeekNumber(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		days int
		want int
	}{
		{0, 1},
		{6, 1},
		{7, 2},
		{13, 2},
		{14, 3},
	}
	for _, tt := range tests {
		now := created.Add(time.Duration(tt.days) * 24 * time.Hour)
		if got := currentWeekNumber(created, now); got != tt.want {
			t.Errorf("day %d: week = %d, want %d", tt.days, got, tt.want)
		}
	}

	if got := currentWeekNumber(created.Add(time.Hour), created); got != 1 {
		t.Errorf("clock skew before account creation should clamp to week 1, got %d", got)
	}
}
