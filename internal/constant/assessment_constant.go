package constant

// Closed vocabularies for the 10-question assessment. The dto layer enforces
// these through validator oneof tags; they are duplicated here for seeding and
// for code that needs the canonical lists.

var ConcernTags = []string{
	"performance", "anxiety", "communication", "relationships", "body_image",
	"confidence", "sexual_health", "education", "loneliness", "social_wellness",
	"stress", "mental_health", "exploring",
}

var DurationOptions = []string{"recently", "few_months", "over_a_year", "years"}

var SeverityOptions = []string{
	"occasionally", "think_regularly", "affecting_confidence",
	"impacting_relationships", "avoiding_situations",
}

var RelationshipStatusOptions = []string{"yes_they_know", "yes_havent_shared", "no_single", "complicated"}

var GoalTags = []string{
	"confident_intimate", "better_communication", "body_confidence", "less_anxiety",
	"enjoying_without_overthinking", "feeling_normal", "healthy_habits",
}

var SupportHistoryOptions = []string{"yes_therapist", "yes_friends_family", "no_first_time", "tried_not_helpful"}

var PrimaryFearOptions = []string{
	"never_get_better", "broken_abnormal", "partner_will_leave",
	"never_confident", "alone_in_this", "all_in_my_head",
}

var LearningStyleOptions = []string{"videos", "reading", "interactive", "talking", "mix"}

var PreferredTimeOptions = []string{"morning", "midday", "afternoon", "evening", "night", "varies"}

// Fallback tags when a profile carries empty concern/goal lists.
const (
	DefaultConcernTag = "stress"
	DefaultGoalTag    = "healthy_habits"
)
