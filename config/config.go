package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Mail provider selection: "mailgun", "netlify" or "log"
	MailProvider string
	// Mailgun (Basic auth, form-encoded)
	MailgunAPIKey  string
	MailgunDomain  string
	MailgunAPIBase string
	// Netlify Emails integration (Bearer token, JSON)
	NetlifyAuthToken string
	NetlifySiteURL   string
	// Sender/recipient identities
	ContactFromEmail string // Must be a verified sender on the provider side
	ContactEmailTo   string // Fallback inbox when the client omits a recipient
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		MailProvider: strings.ToLower(strings.TrimSpace(getEnv("MAIL_PROVIDER", "log"))),

		MailgunAPIKey: getEnv("MAILGUN_API_KEY", ""),
		MailgunDomain: getEnv("MAILGUN_DOMAIN", ""),
		// Trailing slash stripped to avoid double slashes in the messages URL
		MailgunAPIBase: strings.TrimRight(getEnv("MAILGUN_API_BASE", "https://api.mailgun.net/v3"), "/"),

		NetlifyAuthToken: getEnv("NETLIFY_AUTH_TOKEN", ""),
		NetlifySiteURL:   strings.TrimRight(getEnv("NETLIFY_SITE_URL", ""), "/"),

		ContactFromEmail: getEnv("CONTACT_FROM_EMAIL", "Postmaster <dev@howapped.com>"),
		ContactEmailTo:   getEnv("CONTACT_EMAIL_TO", "jon@howapped.com"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
