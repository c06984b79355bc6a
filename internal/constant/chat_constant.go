package constant

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	ChatRoleSystem    = "system"
)

const DefaultConversationTitle = "New conversation"

// Gender values accepted at sign-up, used to pick the companion persona set.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)
