package chat

import "strings"

// Crisis interception is policy, not moderation: a matching turn skips the
// completion call and gets a fixed resource response instead.

var crisisPhrases = []string{
	"kill myself",
	"suicide",
	"suicidal",
	"end my life",
	"want to die",
	"i want to end it",
	"end it all",
	"hurt myself",
	"harm myself",
	"self harm",
	"self-harm",
	"no reason to live",
	"better off without me",
}

// CrisisResponse is the fixed assistant message persisted for an intercepted
// turn. It must be returned exactly as written.
const CrisisResponse = "I'm really glad you told me, and I'm taking what you said seriously. What you're feeling matters, and you deserve support from someone trained for this. Please reach out right now: call or text a crisis line (988 in the US, or your local emergency number), or talk to someone you trust. You don't have to go through this alone. I'm still here to talk whenever you need me."

// IsCrisis reports whether the message matches a crisis phrase,
// case-insensitively.
func IsCrisis(content string) bool {
	lowered := strings.ToLower(content)
	for _, phrase := range crisisPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}
