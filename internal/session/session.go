package session

import (
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/text/language"

	"wordcounter/internal/analysis"
	"wordcounter/internal/config"
	"wordcounter/internal/logging"
	"wordcounter/internal/report"
	"wordcounter/internal/textsource"
)

// TextInputSource labels analyses of directly entered text.
const TextInputSource = "text input"

// Options configures a Session.
type Options struct {
	Language          language.Tag
	DefaultTopN       int
	ExportRows        int
	DefaultExportPath string
	Terminator        string
}

// OptionsFromConfig maps configuration values onto session options.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	return Options{
		Language:          cfg.LanguageTag(),
		DefaultTopN:       cfg.Analysis.DefaultTopN,
		ExportRows:        cfg.Analysis.ExportTopN,
		DefaultExportPath: cfg.Export.DefaultPath,
		Terminator:        cfg.Session.Terminator,
	}
}

func (o Options) withDefaults() Options {
	defaults := config.Default()
	if o.DefaultTopN <= 0 {
		o.DefaultTopN = defaults.Analysis.DefaultTopN
	}
	if o.ExportRows <= 0 {
		o.ExportRows = defaults.Analysis.ExportTopN
	}
	if strings.TrimSpace(o.DefaultExportPath) == "" {
		o.DefaultExportPath = defaults.Export.DefaultPath
	}
	if strings.TrimSpace(o.Terminator) == "" {
		o.Terminator = defaults.Session.Terminator
	}
	return o
}

// Session holds the analyzer state for one run.
type Session struct {
	opts     Options
	analyzer *analysis.Analyzer
	exporter *report.Exporter
	logger   *slog.Logger
}

// New constructs a session with an empty analysis.
func New(opts Options, logger *slog.Logger) *Session {
	opts = opts.withDefaults()
	return &Session{
		opts:     opts,
		analyzer: analysis.New(analysis.NewTokenizer(opts.Language), logger),
		exporter: report.NewExporter(opts.ExportRows, logger),
		logger:   logging.NewComponentLogger(logger, "session"),
	}
}

// Options returns the effective session options.
func (s *Session) Options() Options {
	return s.opts
}

// Result exposes the current analysis for rendering.
func (s *Session) Result() report.Source {
	return s.analyzer
}

// Ready returns analysis.ErrNoAnalysis until an analysis has counted at least
// one word.
func (s *Session) Ready() error {
	if !s.analyzer.HasResult() {
		return analysis.ErrNoAnalysis
	}
	return nil
}

// AnalyzeFile reads path and replaces the current analysis with its counts.
// On failure the previous analysis is kept.
func (s *Session) AnalyzeFile(path string) error {
	path = strings.TrimSpace(path)
	text, err := textsource.ReadFile(path)
	if err != nil {
		return err
	}
	s.analyzer.Analyze(path, text)
	return nil
}

// AnalyzeText replaces the current analysis with the counts of text. Blank text
// is rejected with analysis.ErrEmptyInput and leaves the analysis untouched.
func (s *Session) AnalyzeText(text string) error {
	if strings.TrimSpace(text) == "" {
		return analysis.ErrEmptyInput
	}
	s.analyzer.Analyze(TextInputSource, text)
	return nil
}

// Statistics returns the summary of the current analysis.
func (s *Session) Statistics() (analysis.Statistics, error) {
	if err := s.Ready(); err != nil {
		return analysis.Statistics{}, err
	}
	return s.analyzer.Statistics()
}

// TopWords returns the n most frequent words of the current analysis.
func (s *Session) TopWords(n int) ([]analysis.WordCount, error) {
	if err := s.Ready(); err != nil {
		return nil, err
	}
	return s.analyzer.TopWords(n), nil
}

// Search looks up a single word. An unknown word is not an error; it yields a
// Lookup with a zero count.
func (s *Session) Search(word string) (analysis.Lookup, error) {
	if err := s.Ready(); err != nil {
		return analysis.Lookup{}, err
	}
	word = strings.TrimSpace(word)
	if word == "" {
		return analysis.Lookup{}, analysis.ErrEmptyInput
	}
	return s.analyzer.Lookup(word), nil
}

// Export writes the report to path, or to the default export path when path is
// blank, and returns the path written.
func (s *Session) Export(path string) (string, error) {
	if err := s.Ready(); err != nil {
		return "", err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = s.opts.DefaultExportPath
	}
	if err := s.exporter.Export(path, s.analyzer); err != nil {
		if !errors.Is(err, analysis.ErrNoAnalysis) {
			logging.ErrorWithContext(s.logger, "export failed", analysis.Kind(err),
				logging.String("path", path),
				logging.Error(err),
			)
		}
		return "", err
	}
	return path, nil
}
