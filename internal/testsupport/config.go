package testsupport

import (
	"path/filepath"
	"testing"

	"wordcounter/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose log directory lives in a per-test temp
// directory. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Logging.Dir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLanguage sets the analysis language tag on the test config.
func WithLanguage(tag string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Analysis.Language = tag
	}
}

// WithExportPath points the default export path into the test's temp directory.
func WithExportPath(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Export.DefaultPath = filepath.Join(b.baseDir, name)
	}
}

// WithTerminator overrides the interactive text terminator.
func WithTerminator(terminator string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Session.Terminator = terminator
	}
}

// BaseDir returns the temp directory backing cfg's log directory.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Logging.Dir)
}
