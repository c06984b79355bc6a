package chat

import (
	"strings"
	"testing"
)

func TestIsCrisis(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{"I want to end it", true},
		{"i've been thinking about suicide", true},
		{"Sometimes I want to HURT MYSELF", true},
		{"I could kill myself laughing", true},
		{"my self-harm history", true},
		{"today was rough at work", false},
		{"I ended the project", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsCrisis(tt.content); got != tt.want {
			t.Errorf("IsCrisis(%q) = %v, want %v", tt.content, got, tt.want)
		}
	}
}

func TestPersonaSetsByGender(t *testing.T) {
	male := PersonasForGender("male")
	female := PersonasForGender("female")

	maleIds := map[string]bool{}
	for _, p := range male {
		maleIds[p.ID] = true
	}
	for _, want := range []string{"diva", "maya", "roberta"} {
		if !maleIds[want] {
			t.Errorf("male set missing %q", want)
		}
	}

	femaleIds := map[string]bool{}
	for _, p := range female {
		femaleIds[p.ID] = true
	}
	for _, want := range []string{"brad", "pete", "robert"} {
		if !femaleIds[want] {
			t.Errorf("female set missing %q", want)
		}
	}

	// unknown genders fall back to the female-user set
	other := PersonasForGender("non_binary")
	if len(other) != len(female) || other[0].ID != female[0].ID {
		t.Error("unknown gender should get the female-user set")
	}
}

func TestValidPersona(t *testing.T) {
	if !ValidPersona("diva", "male") {
		t.Error("diva is valid for male users")
	}
	if ValidPersona("diva", "female") {
		t.Error("diva is not in the female-user set")
	}
	if ValidPersona("nonexistent", "female") {
		t.Error("unknown persona id must be invalid")
	}
	if !ValidPersona("brad", "female") {
		t.Error("brad is valid for female users")
	}
}

func TestPersonaByID(t *testing.T) {
	p, ok := PersonaByID("robert")
	if !ok || p.Role != "Therapist" {
		t.Errorf("PersonaByID(robert) = %+v, %v", p, ok)
	}
	if _, ok := PersonaByID("eva"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestSystemPromptPrecedence(t *testing.T) {
	persona, _ := PersonaByID("maya")

	got := SystemPrompt(&persona, "profile context here")
	if got != persona.SystemPrompt {
		t.Error("a bound persona must win over the profile template")
	}

	got = SystemPrompt(nil, "Primary concerns: anxiety.")
	if !strings.Contains(got, "You are Ally") {
		t.Error("profile without persona should select the Ally template")
	}
	if !strings.Contains(got, "Primary concerns: anxiety.") {
		t.Error("profile context must be substituted into the template")
	}
	if strings.Contains(got, "{userProfile}") {
		t.Error("placeholder must not survive substitution")
	}

	got = SystemPrompt(nil, "")
	if got != DefaultSystemPrompt {
		t.Errorf("no persona, no profile should fall back to the default prompt, got %q", got)
	}
}
