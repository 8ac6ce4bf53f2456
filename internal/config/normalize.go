package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeLogging()
	if err := c.normalizeLogDir(); err != nil {
		return err
	}
	c.normalizeFFprobe()
	c.normalizePlugin()
	return nil
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("SUBBURN_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeLogDir() error {
	dir := strings.TrimSpace(c.Logging.Dir)
	if dir == "" {
		c.Logging.Dir = ""
		return nil
	}
	expanded, err := expandPath(dir)
	if err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	c.Logging.Dir = expanded
	return nil
}

func (c *Config) normalizeFFprobe() {
	c.FFprobe.Binary = strings.TrimSpace(c.FFprobe.Binary)
	if c.FFprobe.Binary == "" {
		c.FFprobe.Binary = defaultFFprobeBinary
	}
}

func (c *Config) normalizePlugin() {
	if c.Plugin.LanguageTags != nil {
		trimmed := strings.TrimSpace(*c.Plugin.LanguageTags)
		c.Plugin.LanguageTags = &trimmed
	}
}
