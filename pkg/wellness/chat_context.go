package wellness

import (
	"fmt"
	"strings"
)

// NoProfileChatContext is used when the user has not completed an assessment.
const NoProfileChatContext = "No wellness profile provided; respond in a general, supportive way."

// ChatContext renders the profile as a compact paragraph for the companion's
// system prompt. High severity switches the tone instruction to extra gentle.
func ChatContext(p *Profile) string {
	if p == nil {
		return NoProfileChatContext
	}

	parts := []string{
		fmt.Sprintf("Primary concerns: %s.", strings.Join(p.Concerns, ", ")),
		fmt.Sprintf("They have been dealing with this: urgency level %d/4.", p.UrgencyScore),
		fmt.Sprintf("Severity (how much it affects daily life): %d/5.", p.SeverityScore),
		fmt.Sprintf("Relationship status: %s.", humanize(p.RelationshipStatus)),
		fmt.Sprintf("Goals: %s.", humanize(strings.Join(p.Goals, ", "))),
		fmt.Sprintf("Support history: %s.", humanize(p.SupportHistory)),
		fmt.Sprintf("Current stress level: %d/10.", p.StressLevel),
		fmt.Sprintf("Biggest fear/worry: %s.", humanize(p.PrimaryFear)),
		fmt.Sprintf("Learning style: %s.", p.LearningStyle),
		fmt.Sprintf("Preferred practice time: %s.", p.PreferredTime),
	}

	tone := "Supportive and encouraging."
	if p.SeverityScore >= 4 {
		tone = `Very gentle, extra validating, use "I understand" and "That makes sense" frequently.`
	}
	parts = append(parts, fmt.Sprintf("TONE: %s Never judgmental.", tone))

	return strings.Join(parts, " ")
}

func humanize(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}
