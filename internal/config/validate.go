package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if _, err := language.Parse(c.Analysis.Language); err != nil {
		return fmt.Errorf("analysis.language %q is not a valid BCP 47 tag: %w", c.Analysis.Language, err)
	}
	if err := ensureRange(map[string]int{
		"analysis.default_top_n": c.Analysis.DefaultTopN,
		"analysis.export_top_n":  c.Analysis.ExportTopN,
	}); err != nil {
		return err
	}
	if c.Session.Terminator == "" {
		return errors.New("session.terminator must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not supported (use %s)", c.Logging.Format, supportedLogFormats)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not supported (use debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}

func ensureRange(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
		if value > maxTopN {
			return fmt.Errorf("%s must not exceed %d", key, maxTopN)
		}
	}
	return nil
}
