package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port           string
	DatabasePath   string
	AllowedOrigins string
	SeedOnStart    bool

	// Email Configuration
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	FromEmail        string
	FromName         string
	ContactRecipient string
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	seedOnStart, _ := strconv.ParseBool(getEnv("SEED_ON_START", "true"))

	return &Config{
		Port:           getEnv("PORT", "3001"),
		DatabasePath:   getEnv("DATABASE_PATH", "alexweb.db"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		SeedOnStart:    seedOnStart,

		// Email settings (notifications stay off until SMTP_HOST and
		// CONTACT_RECIPIENT are both set)
		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         smtpPort,
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		FromEmail:        getEnv("FROM_EMAIL", "noreply@alexweb.com"),
		FromName:         getEnv("FROM_NAME", "AlexWeb Motors"),
		ContactRecipient: getEnv("CONTACT_RECIPIENT", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
