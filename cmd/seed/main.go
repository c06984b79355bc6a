package main

import (
	"log"
	"os"

	"wellness-be/internal/model"
	"wellness-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding wellness content catalog...")

	seedCommunities(db)
	seedExercises(db)
	seedVideos(db)

	color.Green("✅ Seeding completed")
}

func seedCommunities(db *gorm.DB) {
	communities := []model.Community{
		{Name: "General", Description: "The main community for everyone. Share, discuss, and connect."},
		{Name: "Performance & Confidence", Description: "Discuss performance anxiety, confidence building, and feeling more at ease."},
		{Name: "Communication & Relationships", Description: "Talking with partners, setting boundaries, and relationship dynamics."},
		{Name: "Body Image & Self-Love", Description: "Body confidence, self-compassion, and feeling good in your skin."},
		{Name: "Sexual Health Q&A", Description: "Questions and evidence-based information about sexual wellness."},
		{Name: "Wins & Progress", Description: "Celebrate small wins and share your progress. Every step counts."},
		{Name: "Managing Anxiety", Description: "Coping with anxiety, stress, and overthinking in a supportive space."},
	}

	for _, c := range communities {
		var existing model.Community
		if err := db.Where("name = ?", c.Name).First(&existing).Error; err == nil {
			color.Yellow("Community %q already exists, skipping", c.Name)
			continue
		}
		c.Id = uuid.New()
		if err := db.Create(&c).Error; err != nil {
			color.Red("Error creating community %q: %v", c.Name, err)
		} else {
			color.Green("Created community: %s", c.Name)
		}
	}
}

func seedExercises(db *gorm.DB) {
	exercises := []model.Exercise{
		{
			Title:           "Name Your Fear",
			Description:     "Write down specific moments when anxiety shows up. This helps externalize the fear.",
			Type:            "journaling",
			Tags:            datatypes.NewJSONSlice([]string{"performance", "anxiety"}),
			GoalTags:        datatypes.NewJSONSlice([]string{"confident_intimate", "less_anxiety"}),
			SeverityLevels:  datatypes.NewJSONSlice([]int{2, 3, 4, 5}),
			DurationMinutes: 5,
			Content:         "Take 5 minutes to write without editing. When did anxiety or worry show up recently? Name one specific moment. What did you feel in your body? Naming it helps separate the experience from who you are.",
			Phase:           1,
			Order:           1,
			IsActive:        true,
		},
		{
			Title:           "4-7-8 Breathing",
			Description:     "Learn a research-backed breathing technique to calm anxiety in the moment.",
			Type:            "guided_audio",
			DisplayType:     "breathing",
			Tags:            datatypes.NewJSONSlice([]string{"stress", "anxiety", "mental_health"}),
			GoalTags:        datatypes.NewJSONSlice([]string{"less_anxiety", "healthy_habits"}),
			SeverityLevels:  datatypes.NewJSONSlice([]int{1, 2, 3, 4, 5}),
			DurationMinutes: 8,
			Content:         "Find a comfortable seat. Breathe in through your nose for 4 counts. Hold for 7 counts. Breathe out slowly through your mouth for 8 counts. Repeat this cycle 4 times.",
			Phase:           1,
			Order:           2,
			IsActive:        true,
		},
		{
			Title:           "Challenging Negative Thoughts",
			Description:     "Identify and reframe thoughts that fuel anxiety. A short CBT-style exercise.",
			Type:            "interactive",
			Tags:            datatypes.NewJSONSlice([]string{"anxiety", "mental_health"}),
			GoalTags:        datatypes.NewJSONSlice([]string{"less_anxiety", "enjoying_without_overthinking"}),
			SeverityLevels:  datatypes.NewJSONSlice([]int{3, 4, 5}),
			DurationMinutes: 10,
			Content:         "Notice one thought that is making you anxious and write it down. Ask: is this a fact or an interpretation? Write a kinder or more balanced version.",
			Phase:           1,
			Order:           3,
			IsActive:        true,
		},
		{
			Title:           "Daily Check-in Habit",
			Description:     "Rate your mood 1-10 and note one thing you are grateful for.",
			Type:            "challenge",
			Tags:            datatypes.NewJSONSlice([]string{"stress", "mental_health", "loneliness"}),
			GoalTags:        datatypes.NewJSONSlice([]string{"healthy_habits"}),
			SeverityLevels:  datatypes.NewJSONSlice([]int{1, 2, 3, 4, 5}),
			DurationMinutes: 3,
			Phase:           1,
			Order:           4,
			IsActive:        true,
		},
		{
			Title:           "Letter to Your Anxiety",
			Description:     "Write a short letter to your anxiety as if it were a person. Helps create distance and perspective.",
			Type:            "journaling",
			Tags:            datatypes.NewJSONSlice([]string{"anxiety", "mental_health", "exploring"}),
			GoalTags:        datatypes.NewJSONSlice([]string{"less_anxiety", "enjoying_without_overthinking"}),
			SeverityLevels:  datatypes.NewJSONSlice([]int{2, 3, 4, 5}),
			DurationMinutes: 7,
			Content:         "Write a short letter to your anxiety as if it were a person. Say what you notice when it shows up and how you would like your relationship with it to change.",
			Phase:           1,
			Order:           5,
			IsActive:        true,
		},
		{
			Title:           "Sexual Health Basics: Fact Check",
			Description:     "Short, evidence-based read on common myths and facts. Build knowledge at your own pace.",
			Type:            "micro_lesson",
			DisplayType:     "read",
			Tags:            datatypes.NewJSONSlice([]string{"sexual_health", "education", "exploring"}),
			GoalTags:        datatypes.NewJSONSlice([]string{"healthy_habits", "feeling_normal"}),
			SeverityLevels:  datatypes.NewJSONSlice([]int{1, 2, 3, 4, 5}),
			DurationMinutes: 6,
			ContentURL:      "https://content.wellness.local/lessons/sexual-health-basics",
			Phase:           1,
			Order:           6,
			IsActive:        true,
		},
		{
			Title:           "Grounding in the Moment",
			Description:     "5-4-3-2-1 sensory grounding when you feel overwhelmed or disconnected.",
			Type:            "guided_audio",
			DisplayType:     "breathing",
			Tags:            datatypes.NewJSONSlice([]string{"anxiety", "stress", "mental_health"}),
			GoalTags:        datatypes.NewJSONSlice([]string{"less_anxiety"}),
			SeverityLevels:  datatypes.NewJSONSlice([]int{2, 3, 4, 5}),
			DurationMinutes: 5,
			Content:         "Use your senses to come back to the present. Name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, 1 you can taste.",
			Phase:           1,
			Order:           8,
			IsActive:        true,
		},
		{
			Title:           "Body Scan Relaxation",
			Description:     "Guided body scan to release tension and increase body awareness.",
			Type:            "guided_audio",
			Tags:            datatypes.NewJSONSlice([]string{"body_image", "stress", "anxiety"}),
			GoalTags:        datatypes.NewJSONSlice([]string{"body_confidence", "less_anxiety"}),
			SeverityLevels:  datatypes.NewJSONSlice([]int{2, 3, 4}),
			DurationMinutes: 12,
			Phase:           2,
			Order:           1,
			IsActive:        true,
		},
		{
			Title:           "Communication Script Builder",
			Description:     "Practice what to say to your partner in a safe, low-pressure way.",
			Type:            "interactive",
			Tags:            datatypes.NewJSONSlice([]string{"communication", "relationships"}),
			GoalTags:        datatypes.NewJSONSlice([]string{"better_communication"}),
			SeverityLevels:  datatypes.NewJSONSlice([]int{2, 3, 4, 5}),
			DurationMinutes: 10,
			Phase:           2,
			Order:           2,
			IsActive:        true,
		},
		{
			Title:           "Confidence Reflection",
			Description:     "Short journaling prompt: What does confidence feel like to you?",
			Type:            "journaling",
			Tags:            datatypes.NewJSONSlice([]string{"confidence", "body_image"}),
			GoalTags:        datatypes.NewJSONSlice([]string{"confident_intimate", "body_confidence", "feeling_normal"}),
			SeverityLevels:  datatypes.NewJSONSlice([]int{1, 2, 3, 4}),
			DurationMinutes: 5,
			Content:         "What does confidence feel like in your body? When have you felt even a little bit of it? Describe that moment in a few sentences.",
			Phase:           2,
			Order:           3,
			IsActive:        true,
		},
		{
			Title:           "Progressive Muscle Relaxation",
			Description:     "Tense and release muscle groups to reduce physical tension and anxiety.",
			Type:            "guided_audio",
			Tags:            datatypes.NewJSONSlice([]string{"stress", "anxiety", "performance"}),
			GoalTags:        datatypes.NewJSONSlice([]string{"less_anxiety", "confident_intimate"}),
			SeverityLevels:  datatypes.NewJSONSlice([]int{1, 2, 3, 4, 5}),
			DurationMinutes: 15,
			Phase:           2,
			Order:           4,
			IsActive:        true,
		},
		{
			Title:           "Boundaries: Saying No Once",
			Description:     "Reflect on one situation where you could say no (or yes) without guilt.",
			Type:            "challenge",
			Tags:            datatypes.NewJSONSlice([]string{"communication", "confidence", "relationships"}),
			GoalTags:        datatypes.NewJSONSlice([]string{"better_communication", "confident_intimate"}),
			SeverityLevels:  datatypes.NewJSONSlice([]int{2, 3, 4}),
			DurationMinutes: 5,
			Phase:           3,
			Order:           1,
			IsActive:        true,
		},
		{
			Title:           "Connection Without Pressure",
			Description:     "Ideas for low-pressure ways to feel closer to a partner or to yourself.",
			Type:            "micro_lesson",
			DisplayType:     "read",
			Tags:            datatypes.NewJSONSlice([]string{"relationships", "loneliness", "social_wellness"}),
			GoalTags:        datatypes.NewJSONSlice([]string{"better_communication", "healthy_habits"}),
			SeverityLevels:  datatypes.NewJSONSlice([]int{1, 2, 3, 4}),
			DurationMinutes: 7,
			ContentURL:      "https://content.wellness.local/lessons/connection-without-pressure",
			Phase:           3,
			Order:           2,
			IsActive:        true,
		},
	}

	for _, e := range exercises {
		var existing model.Exercise
		if err := db.Where("title = ?", e.Title).First(&existing).Error; err == nil {
			color.Yellow("Exercise %q already exists, skipping", e.Title)
			continue
		}
		e.Id = uuid.New()
		if err := db.Create(&e).Error; err != nil {
			color.Red("Error creating exercise %q: %v", e.Title, err)
		} else {
			color.Green("Created exercise: %s", e.Title)
		}
	}
}

type videoFixture struct {
	title          string
	description    string
	tags           []string
	fearAddressed  string
	severityLevels []int
	seconds        int
}

func seedVideos(db *gorm.DB) {
	baseURL := os.Getenv("SEED_REEL_BASE_URL")
	if baseURL == "" {
		baseURL = "https://storage.googleapis.com/wellness-reels"
	}

	fixtures := []videoFixture{
		{"Understanding Performance Anxiety", "How anxiety shows up and why it's treatable.", []string{"performance", "anxiety", "education"}, "broken_abnormal", []int{2, 3, 4, 5}, 45},
		{"Breathing for Calm", "Simple breathing you can use anytime.", []string{"stress", "anxiety", "mental_health"}, "never_get_better", []int{1, 2, 3, 4, 5}, 60},
		{"Talking to Your Partner", "How to start the conversation.", []string{"communication", "relationships"}, "partner_will_leave", []int{2, 3, 4}, 50},
		{"Body Confidence Basics", "Shifting how you see and feel in your body.", []string{"body_image", "confidence"}, "never_confident", []int{2, 3, 4, 5}, 55},
		{"You Are Not Alone", "Others felt the same and found support.", []string{"loneliness", "social_wellness", "mental_health"}, "alone_in_this", []int{1, 2, 3, 4, 5}, 40},
		{"Why Change Is Possible", "Habit and mindset change for anxiety and confidence.", []string{"education", "anxiety", "confidence"}, "never_get_better", []int{1, 2, 3, 4, 5}, 50},
		{"You're Not Broken", "How common these feelings are.", []string{"education", "mental_health", "sexual_health"}, "broken_abnormal", []int{2, 3, 4, 5}, 45},
		{"Building Trust", "Communication so both partners feel safe.", []string{"communication", "relationships"}, "partner_will_leave", []int{2, 3, 4}, 55},
		{"Small Steps to Confidence", "One step at a time.", []string{"confidence", "performance"}, "never_confident", []int{2, 3, 4, 5}, 50},
		{"It's Not All in Your Head", "Mind-body link and why your experience is valid.", []string{"mental_health", "education", "anxiety"}, "all_in_my_head", []int{2, 3, 4, 5}, 45},
		{"One Breath at a Time", "Quick grounding when you're overwhelmed.", []string{"anxiety", "stress"}, "never_get_better", []int{1, 2, 3, 4, 5}, 30},
		{"What Would You Tell a Friend?", "Self-compassion in 60 seconds.", []string{"confidence", "mental_health"}, "alone_in_this", []int{1, 2, 3, 4}, 60},
		{"5-4-3-2-1 Grounding", "Quick sensory grounding.", []string{"anxiety", "stress"}, "all_in_my_head", []int{2, 3, 4, 5}, 50},
		{"Sleep and Wellness", "How rest supports your journey.", []string{"stress", "healthy_habits"}, "", []int{1, 2, 3, 4, 5}, 45},
		{"Asking for Support", "It's brave to ask.", []string{"communication", "loneliness"}, "alone_in_this", []int{1, 2, 3, 4}, 50},
		{"Myth vs Fact", "One common myth about sexual wellness.", []string{"sexual_health", "education"}, "broken_abnormal", []int{1, 2, 3, 4, 5}, 40},
		{"When to Seek Professional Help", "Signs it's time to reach out.", []string{"mental_health", "education"}, "never_get_better", []int{3, 4, 5}, 60},
		{"Progress Is Not Linear", "Bad days don't erase good ones.", []string{"mental_health", "exploring"}, "never_get_better", []int{2, 3, 4, 5}, 45},
		{"Partner Check-In", "One question to ask your partner.", []string{"communication", "relationships"}, "partner_will_leave", []int{2, 3, 4}, 40},
		{"Gratitude in 30 Seconds", "One thing you're grateful for.", []string{"stress", "mental_health"}, "", []int{1, 2, 3, 4, 5}, 30},
	}

	for i, f := range fixtures {
		var existing model.Video
		if err := db.Where("title = ?", f.title).First(&existing).Error; err == nil {
			color.Yellow("Video %q already exists, skipping", f.title)
			continue
		}
		v := model.Video{
			Id:              uuid.New(),
			Title:           f.title,
			Description:     f.description,
			Category:        f.tags[0],
			Tags:            datatypes.NewJSONSlice(f.tags),
			GoalTags:        datatypes.NewJSONSlice([]string{}),
			FearAddressed:   f.fearAddressed,
			SeverityLevels:  datatypes.NewJSONSlice(f.severityLevels),
			URL:             baseURL + "/reel-" + slug(f.title) + ".mp4",
			ThumbnailURL:    baseURL + "/reel-" + slug(f.title) + ".jpg",
			DurationSeconds: f.seconds,
			ViewCount:       (len(fixtures) - i) * 10,
			IsActive:        true,
		}
		if err := db.Create(&v).Error; err != nil {
			color.Red("Error creating video %q: %v", f.title, err)
		} else {
			color.Green("Created video: %s", f.title)
		}
	}
}

func slug(title string) string {
	out := make([]rune, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ' || r == '-':
			if len(out) > 0 && out[len(out)-1] != '-' {
				out = append(out, '-')
			}
		}
	}
	return string(out)
}
