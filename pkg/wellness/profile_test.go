package wellness

import (
	"strings"
	"testing"
)

func TestDurationToUrgency(t *testing.T) {
	tests := []struct {
		duration string
		want     int
	}{
		{"recently", 1},
		{"few_months", 2},
		{"over_a_year", 3},
		{"years", 4},
		{"something_else", 1},
		{"", 1},
	}

	for _, tt := range tests {
		if got := DurationToUrgency(tt.duration); got != tt.want {
			t.Errorf("DurationToUrgency(%q) = %d, want %d", tt.duration, got, tt.want)
		}
	}
}

func TestSeverityToScore(t *testing.T) {
	tests := []struct {
		severity string
		want     int
	}{
		{"occasionally", 1},
		{"think_regularly", 2},
		{"affecting_confidence", 3},
		{"impacting_relationships", 4},
		{"avoiding_situations", 5},
		{"unknown", 1},
	}

	for _, tt := range tests {
		if got := SeverityToScore(tt.severity); got != tt.want {
			t.Errorf("SeverityToScore(%q) = %d, want %d", tt.severity, got, tt.want)
		}
	}
}

func TestNotificationHour(t *testing.T) {
	tests := []struct {
		preferredTime string
		want          int
	}{
		{"morning", 7},
		{"midday", 12},
		{"afternoon", 15},
		{"evening", 19},
		{"night", 22},
		{"varies", 12},
		{"bogus", 12},
	}

	for _, tt := range tests {
		if got := NotificationHour(tt.preferredTime); got != tt.want {
			t.Errorf("NotificationHour(%q) = %d, want %d", tt.preferredTime, got, tt.want)
		}
	}
}

func TestBuildProfileDefaults(t *testing.T) {
	p := BuildProfile(Answers{
		Duration: "few_months",
		Severity: "affecting_confidence",
	})

	if len(p.Concerns) != 1 || p.Concerns[0] != "stress" {
		t.Errorf("empty concerns should default to [stress], got %v", p.Concerns)
	}
	if len(p.Goals) != 1 || p.Goals[0] != "healthy_habits" {
		t.Errorf("empty goals should default to [healthy_habits], got %v", p.Goals)
	}
	if p.UrgencyScore != 2 {
		t.Errorf("UrgencyScore = %d, want 2", p.UrgencyScore)
	}
	if p.SeverityScore != 3 {
		t.Errorf("SeverityScore = %d, want 3", p.SeverityScore)
	}
}

func TestBuildProfileKeepsAnswers(t *testing.T) {
	p := BuildProfile(Answers{
		Concerns:           []string{"anxiety", "confidence"},
		Duration:           "years",
		Severity:           "avoiding_situations",
		RelationshipStatus: "no_single",
		Goals:              []string{"less_anxiety"},
		SupportHistory:     "no_first_time",
		StressLevel:        9,
		PrimaryFear:        "never_get_better",
		LearningStyle:      "videos",
		PreferredTime:      "evening",
	})

	if p.UrgencyScore != 4 || p.SeverityScore != 5 {
		t.Errorf("scores = %d/%d, want 4/5", p.UrgencyScore, p.SeverityScore)
	}
	if p.Concerns[0] != "anxiety" || p.Goals[0] != "less_anxiety" {
		t.Errorf("answers should pass through unchanged")
	}
}

func TestChatContextToneSwitch(t *testing.T) {
	base := Answers{
		Concerns:           []string{"anxiety"},
		Duration:           "recently",
		RelationshipStatus: "no_single",
		Goals:              []string{"less_anxiety"},
		SupportHistory:     "no_first_time",
		StressLevel:        5,
		PrimaryFear:        "never_get_better",
		LearningStyle:      "videos",
		PreferredTime:      "morning",
	}

	base.Severity = "occasionally"
	mild := BuildProfile(base)
	ctx := ChatContext(&mild)
	if !strings.Contains(ctx, "Supportive and encouraging.") {
		t.Errorf("low severity should use the standard tone, got %q", ctx)
	}

	base.Severity = "impacting_relationships"
	severe := BuildProfile(base)
	ctx = ChatContext(&severe)
	if !strings.Contains(ctx, "Very gentle, extra validating") {
		t.Errorf("severity >= 4 should switch to the gentle tone, got %q", ctx)
	}
	if !strings.Contains(ctx, "Never judgmental.") {
		t.Errorf("tone line should always close with the judgment rule")
	}
}

func TestChatContextNilProfile(t *testing.T) {
	if got := ChatContext(nil); got != NoProfileChatContext {
		t.Errorf("nil profile should produce the fallback context, got %q", got)
	}
}

func TestChatContextHumanizesSnakeCase(t *testing.T) {
	p := BuildProfile(Answers{
		Concerns:           []string{"anxiety"},
		Duration:           "recently",
		Severity:           "occasionally",
		RelationshipStatus: "yes_havent_shared",
		Goals:              []string{"body_confidence"},
		SupportHistory:     "tried_not_helpful",
		PrimaryFear:        "broken_abnormal",
		LearningStyle:      "mix",
		PreferredTime:      "varies",
	})

	ctx := ChatContext(&p)
	if strings.Contains(ctx, "yes_havent_shared") || strings.Contains(ctx, "broken_abnormal") {
		t.Errorf("snake_case answers should be humanized in the context: %q", ctx)
	}
	if !strings.Contains(ctx, "yes havent shared") {
		t.Errorf("expected humanized relationship status, got %q", ctx)
	}
}
