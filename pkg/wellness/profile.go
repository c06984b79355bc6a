// Package wellness derives a user's wellness profile from their assessment
// answers. The profile is computed on read and never stored; the assessment
// row stays the single source of truth.
package wellness

// Answers carries the raw assessment answers plus the user attributes the
// derivation needs.
type Answers struct {
	Age                *int
	Gender             string
	Concerns           []string
	Duration           string
	Severity           string
	RelationshipStatus string
	Goals              []string
	SupportHistory     string
	StressLevel        int
	PrimaryFear        string
	LearningStyle      string
	PreferredTime      string
}

type Profile struct {
	Age                *int
	Gender             string
	Concerns           []string
	UrgencyScore       int
	SeverityScore      int
	RelationshipStatus string
	Goals              []string
	SupportHistory     string
	StressLevel        int
	PrimaryFear        string
	LearningStyle      string
	PreferredTime      string
}

var urgencyByDuration = map[string]int{
	"recently":    1,
	"few_months":  2,
	"over_a_year": 3,
	"years":       4,
}

var scoreBySeverity = map[string]int{
	"occasionally":            1,
	"think_regularly":         2,
	"affecting_confidence":    3,
	"impacting_relationships": 4,
	"avoiding_situations":     5,
}

var hourByPreferredTime = map[string]int{
	"morning":   7,
	"midday":    12,
	"afternoon": 15,
	"evening":   19,
	"night":     22,
	"varies":    12,
}

// DurationToUrgency maps how long the user has been dealing with their
// concerns to an urgency score of 1-4. Unknown values score 1.
func DurationToUrgency(duration string) int {
	if score, ok := urgencyByDuration[duration]; ok {
		return score
	}
	return 1
}

// SeverityToScore maps the severity answer to a score of 1-5. Unknown
// values score 1.
func SeverityToScore(severity string) int {
	if score, ok := scoreBySeverity[severity]; ok {
		return score
	}
	return 1
}

// NotificationHour picks the reminder hour (0-23) for a preferred practice
// time. Unknown values land midday.
func NotificationHour(preferredTime string) int {
	if hour, ok := hourByPreferredTime[preferredTime]; ok {
		return hour
	}
	return 12
}

// BuildProfile derives the wellness profile. Empty concern or goal lists are
// replaced with safe defaults so downstream matching always has something to
// work with.
func BuildProfile(a Answers) Profile {
	concerns := a.Concerns
	if len(concerns) == 0 {
		concerns = []string{"stress"}
	}
	goals := a.Goals
	if len(goals) == 0 {
		goals = []string{"healthy_habits"}
	}

	return Profile{
		Age:                a.Age,
		Gender:             a.Gender,
		Concerns:           concerns,
		UrgencyScore:       DurationToUrgency(a.Duration),
		SeverityScore:      SeverityToScore(a.Severity),
		RelationshipStatus: a.RelationshipStatus,
		Goals:              goals,
		SupportHistory:     a.SupportHistory,
		StressLevel:        a.StressLevel,
		PrimaryFear:        a.PrimaryFear,
		LearningStyle:      a.LearningStyle,
		PreferredTime:      a.PreferredTime,
	}
}
