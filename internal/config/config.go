package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	JWT      JWTConfig
	AI       AIConfig
	Chat     ChatConfig
	Feed     FeedConfig
	Otp      OtpConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type AIConfig struct {
	Provider          string // "venice" or "ollama"
	BaseURL           string
	APIKey            string
	ChatModel         string
	TitleModel        string
	OllamaBaseURL     string
	CompletionTimeout int // seconds; the completion call is the only unbounded-latency step
}

type ChatConfig struct {
	MessageLimit int // default max messages (user + assistant) per conversation
}

type FeedConfig struct {
	CandidatePoolSize int // ranker candidate fetch bound
	MaxRecommended    int // final recommendation list size
	PlanLength        int // day plan length
	VideoPageLimit    int // default videos per page
	VideoPageMax      int // max videos per page
}

type OtpConfig struct {
	ExpiryMinutes int
	SendPerHour   int // max OTP sends per identifier per hour
	VerifyPerHour int // max OTP verify attempts per identifier per hour
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Ally Wellness"),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "dev-secret-change-in-production"),
			ExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 168),
		},
		AI: AIConfig{
			Provider:          getEnv("AI_PROVIDER", "venice"),
			BaseURL:           getEnv("VENICE_BASE_URL", "https://api.venice.ai/api/v1"),
			APIKey:            getEnv("VENICE_API_KEY", ""),
			ChatModel:         getEnv("VENICE_CHAT_MODEL", "venice-uncensored"),
			TitleModel:        getEnv("AI_TITLE_MODEL", "gpt-4.1-nano"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			CompletionTimeout: getEnvAsInt("AI_COMPLETION_TIMEOUT_SECONDS", 45),
		},
		Chat: ChatConfig{
			MessageLimit: getEnvAsInt("CHAT_MESSAGE_LIMIT", 100),
		},
		Feed: FeedConfig{
			CandidatePoolSize: getEnvAsInt("FEED_CANDIDATE_POOL_SIZE", 30),
			MaxRecommended:    getEnvAsInt("FEED_MAX_RECOMMENDED", 15),
			PlanLength:        getEnvAsInt("FEED_PLAN_LENGTH", 7),
			VideoPageLimit:    getEnvAsInt("FEED_VIDEO_PAGE_LIMIT", 5),
			VideoPageMax:      getEnvAsInt("FEED_VIDEO_PAGE_MAX", 10),
		},
		Otp: OtpConfig{
			ExpiryMinutes: getEnvAsInt("OTP_EXPIRY_MINUTES", 10),
			SendPerHour:   getEnvAsInt("OTP_SEND_PER_HOUR", 5),
			VerifyPerHour: getEnvAsInt("OTP_VERIFY_PER_HOUR", 10),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
