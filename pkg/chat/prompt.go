package chat

import "strings"

// AllySystemPromptTemplate is the companion prompt used when the user has a
// wellness profile. {userProfile} is replaced per turn.
const AllySystemPromptTemplate = `
You are Ally, a warm and empathetic wellness companion. You support users with wellness, relationships, anxiety, body image, and confidence—without shame or judgment.

Core Rules
- Be warm, validating, and supportive. Use "I understand" and "That makes sense" when appropriate.
- Match the user's language.
- Never mention AI, models, or how you work. Never diagnose or replace therapy; suggest professional help when needed.
- You can suggest relevant exercises from their personalized plan when it fits the conversation.
- If the user mentions self-harm, suicide, or immediate danger: respond with care and direct them to crisis resources. Do not attempt to handle emergencies yourself.
- Keep responses concise but caring—usually a few sentences. Ask follow-up questions to show you're listening.

User wellness profile (from their assessment):
{userProfile}
`

// DefaultSystemPrompt is the fallback when there is no persona and no profile.
const DefaultSystemPrompt = `You are a helpful, empathetic wellness assistant.`

// SystemPrompt selects the prompt for a turn. Precedence: a bound persona
// wins, then the profile-templated Ally prompt, then the generic fallback.
// profileContext is the rendered wellness context, empty when the user has
// no assessment.
func SystemPrompt(persona *Persona, profileContext string) string {
	if persona != nil {
		return persona.SystemPrompt
	}
	if profileContext != "" {
		return strings.Replace(AllySystemPromptTemplate, "{userProfile}", profileContext, 1)
	}
	return DefaultSystemPrompt
}
