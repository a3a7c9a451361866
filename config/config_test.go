package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unset clears variables while still registering them with t.Setenv so
// the originals are restored after the test.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	unset(t,
		"PORT", "FRONTEND_URL", "MAIL_PROVIDER",
		"MAILGUN_API_KEY", "MAILGUN_DOMAIN", "MAILGUN_API_BASE",
		"NETLIFY_AUTH_TOKEN", "NETLIFY_SITE_URL",
		"CONTACT_FROM_EMAIL", "CONTACT_EMAIL_TO",
	)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "log", cfg.MailProvider)
	assert.Equal(t, "https://api.mailgun.net/v3", cfg.MailgunAPIBase)
	assert.Equal(t, "jon@howapped.com", cfg.ContactEmailTo)
	assert.Empty(t, cfg.MailgunAPIKey)
	assert.Empty(t, cfg.NetlifyAuthToken)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("MAIL_PROVIDER", " Mailgun ")
	t.Setenv("MAILGUN_API_KEY", "key-abc")
	t.Setenv("MAILGUN_DOMAIN", "mg.howapped.com")
	t.Setenv("MAILGUN_API_BASE", "https://api.eu.mailgun.net/v3/")
	t.Setenv("FRONTEND_URL", "https://www.howapped.com/")
	t.Setenv("NETLIFY_SITE_URL", "https://howapped.netlify.app/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "mailgun", cfg.MailProvider, "provider name is normalized")
	assert.Equal(t, "key-abc", cfg.MailgunAPIKey)
	assert.Equal(t, "https://api.eu.mailgun.net/v3", cfg.MailgunAPIBase, "trailing slash stripped")
	assert.Equal(t, "https://www.howapped.com", cfg.FrontendURL)
	assert.Equal(t, "https://howapped.netlify.app", cfg.NetlifySiteURL)
}
