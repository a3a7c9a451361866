package mailer

import (
	"errors"
	"fmt"
	"log/slog"

	"contact-relay-backend/config"
)

// FromConfig constructs the single active strategy for this deployment.
// Missing credentials for the selected provider are a startup error, not
// something to discover on the first request.
func FromConfig(cfg *config.Config, logger *slog.Logger) (Mailer, error) {
	switch cfg.MailProvider {
	case "mailgun":
		if cfg.MailgunAPIKey == "" || cfg.MailgunDomain == "" {
			return nil, errors.New("mailer: MAILGUN_API_KEY and MAILGUN_DOMAIN are required for the mailgun provider")
		}
		logger.Info("mail provider initialised", "provider", "mailgun", "domain", cfg.MailgunDomain)
		return NewMailgun(cfg.MailgunAPIKey, cfg.MailgunDomain, cfg.MailgunAPIBase), nil
	case "netlify":
		if cfg.NetlifyAuthToken == "" || cfg.NetlifySiteURL == "" {
			return nil, errors.New("mailer: NETLIFY_AUTH_TOKEN and NETLIFY_SITE_URL are required for the netlify provider")
		}
		logger.Info("mail provider initialised", "provider", "netlify", "site", cfg.NetlifySiteURL)
		return NewNetlify(cfg.NetlifyAuthToken, cfg.NetlifySiteURL), nil
	case "log", "":
		logger.Warn("mail provider initialised in log mode - emails will not be delivered")
		return NewLogMailer(logger), nil
	default:
		return nil, fmt.Errorf("mailer: unsupported provider %q", cfg.MailProvider)
	}
}
