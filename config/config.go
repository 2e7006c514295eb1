// Package config loads environment variables and provides a typed Config used across the process.
// It applies sensible defaults so the binary can run locally with minimal setup.
// Required chat credentials are checked by Validate, not by Load.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// DefaultCodePattern matches four hyphen-separated groups of four
// uppercase alphanumerics, e.g. ABCD-1234-EFGH-5678.
const DefaultCodePattern = `\b[A-Z0-9]{4}(?:-[A-Z0-9]{4}){3}\b`

// DefaultTestMessage is fed through the matcher in self-test mode when
// TEST_MESSAGE is not set.
const DefaultTestMessage = "TEST-CODE-1234-ABCD"

type Config struct {
	// Twitch IRC identity
	Nick    string
	Token   string
	Channel string

	// Detection
	CodePattern string

	// Side effects
	DisableBeep      bool
	DisableClipboard bool
	AutoRedeem       bool
	TargetPID        int // 0 means auto-discover when AutoRedeem is set
	SendEnter        bool

	// Self-test
	SelfTest    bool
	TestMessage string

	// Observability
	MetricsAddr string
}

// Load reads environment variables and applies defaults. It doesn't fail on
// missing credentials; use Validate() before connecting. The channel name is
// normalized to carry a leading '#'.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Nick = strings.TrimSpace(os.Getenv("TWITCH_NICK"))
	cfg.Token = strings.TrimSpace(os.Getenv("TWITCH_OAUTH"))
	cfg.Channel = normalizeChannel(os.Getenv("TWITCH_CHANNEL"))

	cfg.CodePattern = os.Getenv("CODE_REGEX")
	if cfg.CodePattern == "" {
		cfg.CodePattern = DefaultCodePattern
	}

	cfg.DisableBeep = os.Getenv("DISABLE_BEEP") == "1"
	cfg.DisableClipboard = os.Getenv("DISABLE_CLIPBOARD") == "1"
	cfg.AutoRedeem = os.Getenv("AUTO_REDEEM") == "1"
	cfg.SendEnter = os.Getenv("REDEEM_SEND_ENTER") == "1"

	if v := os.Getenv("EA_PID"); v != "" {
		pid, err := strconv.Atoi(v)
		if err != nil || pid <= 0 {
			// Degrade to auto-discovery rather than refusing to start.
			slog.Warn("EA_PID is not a positive integer; will auto-discover if automation is enabled", slog.String("value", v))
		} else {
			cfg.TargetPID = pid
		}
	}
	if cfg.AutoRedeem && cfg.TargetPID == 0 {
		slog.Info("AUTO_REDEEM=1 without EA_PID; will try auto-detect of the target process")
	}

	cfg.SelfTest = os.Getenv("NO_CONNECT") == "1"
	cfg.TestMessage = os.Getenv("TEST_MESSAGE")
	if cfg.TestMessage == "" {
		cfg.TestMessage = DefaultTestMessage
	}

	cfg.MetricsAddr = os.Getenv("METRICS_ADDR")

	return cfg, nil
}

// Validate checks the fields required to open the chat session.
func (c *Config) Validate() error {
	if c.Nick == "" || c.Token == "" || c.Channel == "" {
		return fmt.Errorf("missing twitch env: require TWITCH_NICK, TWITCH_OAUTH, TWITCH_CHANNEL")
	}
	if !strings.HasPrefix(c.Token, "oauth:") {
		return fmt.Errorf("TWITCH_OAUTH must start with oauth:")
	}
	return nil
}

func normalizeChannel(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "#") {
		return raw
	}
	return "#" + raw
}
