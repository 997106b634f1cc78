// config/config.go
package config

import (
	"log"
	"os"
	"strconv"
)

// SMTPConfig holds the mailer settings. All values come from the
// environment; an incomplete set means the server runs in dev mode and OTP
// codes are only written to the log.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// LoadSMTPConfig reads SMTP settings from the environment.
func LoadSMTPConfig() SMTPConfig {
	cfg := SMTPConfig{
		Host: os.Getenv("SMTP_HOST"),
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		From: os.Getenv("FROM_EMAIL"),
	}

	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			log.Printf("Invalid SMTP_PORT %q, mail delivery disabled", portStr)
		} else {
			cfg.Port = port
		}
	}

	// Sender falls back to the credential identity
	if cfg.From == "" {
		cfg.From = cfg.User
	}

	return cfg
}

// IsConfigured reports whether real mail delivery is possible. False means
// dev mode.
func (c SMTPConfig) IsConfigured() bool {
	return c.Host != "" && c.Port != 0 && c.User != "" && c.Pass != "" && c.From != ""
}

// DataDir returns the directory holding the durable JSON collections. It is
// created on first use by the repositories.
func DataDir() string {
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "data"
	}
	return dir
}

// Port returns the HTTP listen port.
func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}
