package config

import (
	"os"
	"testing"
	"time"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("setenv %s failed: %v", key, err)
	}
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	_ = os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "APP_SERVICE_NAME")
	unsetEnv(t, "HTTP_PORT")
	unsetEnv(t, "GOCARDLESS_ACCESS_TOKEN")
	unsetEnv(t, "GOCARDLESS_ENVIRONMENT")
	unsetEnv(t, "SMTP_HOST")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.App.ServiceName != "donations-service" {
		t.Fatalf("unexpected service name: %s", cfg.App.ServiceName)
	}
	if cfg.HTTP.Port != "8080" {
		t.Fatalf("unexpected http port: %s", cfg.HTTP.Port)
	}
	if cfg.GoCardless.AccessToken != "" {
		t.Fatalf("expected empty access token, got %q", cfg.GoCardless.AccessToken)
	}
	if cfg.GoCardless.Environment != "sandbox" {
		t.Fatalf("unexpected environment: %s", cfg.GoCardless.Environment)
	}
	if cfg.GoCardless.HTTPTimeout != 10*time.Second {
		t.Fatalf("unexpected gocardless timeout: %v", cfg.GoCardless.HTTPTimeout)
	}
	if cfg.Mail.SMTPHost != "" {
		t.Fatalf("expected empty smtp host, got %q", cfg.Mail.SMTPHost)
	}
}

func TestLoadOverrides(t *testing.T) {
	setEnv(t, "APP_SERVICE_NAME", "donations-test")
	setEnv(t, "HTTP_PORT", "8181")
	setEnv(t, "LOG_LEVEL", "debug")
	setEnv(t, "GOCARDLESS_ACCESS_TOKEN", "live_token_abc")
	setEnv(t, "GOCARDLESS_ENVIRONMENT", "live")
	setEnv(t, "GOCARDLESS_HTTP_TIMEOUT_SECONDS", "25")
	setEnv(t, "SMTP_HOST", "smtp.example.org")
	setEnv(t, "ENQUIRY_TO_ADDRESS", "bookings@example.org")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.App.ServiceName != "donations-test" {
		t.Fatalf("unexpected service name: %s", cfg.App.ServiceName)
	}
	if cfg.HTTP.Port != "8181" {
		t.Fatalf("unexpected http port: %s", cfg.HTTP.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %s", cfg.Log.Level)
	}
	if cfg.GoCardless.AccessToken != "live_token_abc" || cfg.GoCardless.Environment != "live" {
		t.Fatalf("unexpected gocardless config: %+v", cfg.GoCardless)
	}
	if cfg.GoCardless.HTTPTimeout != 25*time.Second {
		t.Fatalf("unexpected gocardless timeout: %v", cfg.GoCardless.HTTPTimeout)
	}
	if cfg.Mail.SMTPHost != "smtp.example.org" || cfg.Mail.ToAddress != "bookings@example.org" {
		t.Fatalf("unexpected mail config: %+v", cfg.Mail)
	}
}
