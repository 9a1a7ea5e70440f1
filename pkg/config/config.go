package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Authority string // identity that owns the arcade directory
	JoinFee   uint64 // credits charged per seat join

	LogLevel string

	// Optional Discord announcer
	DiscordToken      string
	AnnounceChannelID string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Authority:         os.Getenv("ARCADE_AUTHORITY"),
		LogLevel:          firstNonEmpty(os.Getenv("ARCADE_LOG_LEVEL"), "info"),
		DiscordToken:      os.Getenv("DISCORD_BOT_TOKEN"),
		AnnounceChannelID: os.Getenv("DISCORD_ANNOUNCE_CHANNEL_ID"),
	}

	fee := firstNonEmpty(os.Getenv("ARCADE_JOIN_FEE"), "25")
	v, err := strconv.ParseUint(fee, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad ARCADE_JOIN_FEE %q: %w", fee, err)
	}
	cfg.JoinFee = v

	if cfg.Authority == "" {
		return nil, errors.New("missing ARCADE_AUTHORITY")
	}
	// announcer is optional, but half-configured is a mistake
	if cfg.DiscordToken != "" && cfg.AnnounceChannelID == "" {
		return nil, errors.New("DISCORD_BOT_TOKEN set but DISCORD_ANNOUNCE_CHANNEL_ID missing")
	}

	return cfg, nil
}

func firstNonEmpty(v, d string) string {
	if v == "" {
		return d
	}
	return v
}

func (c *Config) AnnouncerEnabled() bool { return c.DiscordToken != "" }

func (c *Config) Redacted() string {
	tok := "[set]"
	if c.DiscordToken == "" {
		tok = "[empty]"
	}
	return fmt.Sprintf(
		"authority=%s joinFee=%d logLevel=%s announceChannelID=%s token=%s",
		c.Authority, c.JoinFee, c.LogLevel, c.AnnounceChannelID, tok,
	)
}
