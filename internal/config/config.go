package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Upload validation policies.
const (
	UploadPolicyAllowlist   = "allowlist"
	UploadPolicyImagePrefix = "image-prefix"
)

// Mailer drivers.
const (
	MailerDriverSMTP    = "smtp"
	MailerDriverMailgun = "mailgun"
)

type Config struct {
	// Server
	Port        string
	Environment string
	CORSOrigins string

	// Storage
	MongoURL string
	DBName   string

	// Uploads
	UploadDir    string
	UploadPolicy string

	// Mail
	MailerDriver  string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPassword  string
	MailgunAPIKey string
	MailgunDomain string
	SenderEmail   string
	AdminEmail    string
}

// Load reads the optional .env file and builds the configuration from the
// environment with defaults.
func Load() *Config {
	// Ignore error if .env file doesn't exist (e.g. in production)
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		MongoURL: getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:   getEnv("DB_NAME", "school"),

		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
		UploadPolicy: getEnv("UPLOAD_POLICY", UploadPolicyAllowlist),

		MailerDriver:  getEnv("MAILER_DRIVER", MailerDriverSMTP),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		MailgunAPIKey: getEnv("MAILGUN_API_KEY", ""),
		MailgunDomain: getEnv("MAILGUN_DOMAIN", ""),
		SenderEmail:   getEnv("SENDER_EMAIL", "noreply@school.local"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@school.local"),
	}
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns the value of an environment variable as an integer or a default value
func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
