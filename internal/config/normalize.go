package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeAnalysis()
	c.normalizeExport()
	c.normalizeSession()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizeAnalysis() {
	c.Analysis.Language = strings.TrimSpace(c.Analysis.Language)
	if c.Analysis.Language == "" {
		c.Analysis.Language = defaultLanguage
	}
	if c.Analysis.DefaultTopN == 0 {
		c.Analysis.DefaultTopN = defaultTopN
	}
	if c.Analysis.ExportTopN == 0 {
		c.Analysis.ExportTopN = defaultExportTopN
	}
}

// The export path stays relative so a bare file name lands in the working
// directory, matching the interactive prompt.
func (c *Config) normalizeExport() {
	c.Export.DefaultPath = strings.TrimSpace(c.Export.DefaultPath)
	if c.Export.DefaultPath == "" {
		c.Export.DefaultPath = defaultExportPath
	}
}

func (c *Config) normalizeSession() {
	c.Session.Terminator = strings.TrimSpace(c.Session.Terminator)
	if c.Session.Terminator == "" {
		c.Session.Terminator = defaultTerminator
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
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
