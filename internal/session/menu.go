package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"wordcounter/internal/analysis"
	"wordcounter/internal/logging"
	"wordcounter/internal/report"
	"wordcounter/internal/textsource"
)

var menuItems = []string{
	"Analyze a file",
	"Analyze text",
	"Search for a word",
	"Show statistics",
	"Show most frequent words",
	"Export results to a file",
	"Exit",
}

const bannerWidth = 60

// errExit ends the menu loop without reporting an error.
var errExit = errors.New("exit requested")

// Menu drives a Session from line-oriented input.
type Menu struct {
	session  *Session
	lines    *textsource.LineReader
	out      io.Writer
	colorize bool
	logger   *slog.Logger
}

// NewMenu wires a menu that reads from in and writes to out.
func NewMenu(s *Session, in io.Reader, out io.Writer, colorize bool, logger *slog.Logger) *Menu {
	return &Menu{
		session:  s,
		lines:    textsource.NewLineReader(in),
		out:      out,
		colorize: colorize,
		logger:   logging.NewComponentLogger(logger, "menu"),
	}
}

// Run shows the menu until the user exits, the input ends, or ctx is
// cancelled. Failures of individual actions are reported and the loop
// continues.
func (m *Menu) Run(ctx context.Context) error {
	m.banner()
	m.logger.Info("session started")
	defer m.logger.Info("session ended")

	for {
		m.showMenu()
		choice, err := m.prompt(ctx, fmt.Sprintf("Select an option (1-%d): ", len(menuItems)))
		if err != nil {
			return m.finish(err)
		}

		if err := m.dispatch(ctx, strings.TrimSpace(choice)); err != nil {
			return m.finish(err)
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return m.analyzeFile(ctx)
	case "2":
		return m.analyzeText(ctx)
	case "3":
		return m.requireAnalysis(ctx, m.search)
	case "4":
		return m.requireAnalysis(ctx, m.statistics)
	case "5":
		return m.requireAnalysis(ctx, m.topWords)
	case "6":
		return m.requireAnalysis(ctx, m.export)
	case "7":
		return errExit
	default:
		m.status(report.StatusError, fmt.Sprintf("Invalid choice! Enter a number between 1 and %d.", len(menuItems)))
		return nil
	}
}

func (m *Menu) analyzeFile(ctx context.Context) error {
	path, err := m.prompt(ctx, "Path of the file to analyze: ")
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		m.status(report.StatusError, "Invalid file path!")
		return nil
	}

	if err := m.session.AnalyzeFile(path); err != nil {
		m.fail(err)
		return nil
	}
	m.status(report.StatusOK, fmt.Sprintf("'%s' analyzed successfully!", path))
	m.printStatistics()
	return nil
}

func (m *Menu) analyzeText(ctx context.Context) error {
	terminator := m.session.Options().Terminator
	m.println(fmt.Sprintf("Enter the text to analyze (type '%s' on its own line to finish):", terminator))

	text, readErr := textsource.CollectLines(ctx, m.lines, terminator)
	if readErr != nil && !errors.Is(readErr, io.EOF) {
		return readErr
	}

	if err := m.session.AnalyzeText(text); err != nil {
		if errors.Is(err, analysis.ErrEmptyInput) {
			m.status(report.StatusError, "Empty text!")
		} else {
			m.fail(err)
		}
		return readErr
	}
	m.status(report.StatusOK, "Text analyzed successfully!")
	m.printStatistics()
	return readErr
}

func (m *Menu) search(ctx context.Context) error {
	word, err := m.prompt(ctx, "Word to search for: ")
	if err != nil {
		return err
	}
	result, err := m.session.Search(word)
	if err != nil {
		if errors.Is(err, analysis.ErrEmptyInput) {
			m.status(report.StatusError, "Invalid word!")
		} else {
			m.fail(err)
		}
		return nil
	}
	kind := report.StatusInfo
	if !result.Found() {
		kind = report.StatusWarn
	}
	m.status(kind, report.Lookup(result))
	return nil
}

func (m *Menu) statistics(context.Context) error {
	m.printStatistics()
	return nil
}

func (m *Menu) topWords(ctx context.Context) error {
	defaultN := m.session.Options().DefaultTopN
	answer, err := m.prompt(ctx, fmt.Sprintf("How many words? (default: %d): ", defaultN))
	if err != nil {
		return err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(answer))
	if convErr != nil || n <= 0 {
		n = defaultN
	}
	m.println(report.TopWords(m.session.Result(), n))
	return nil
}

func (m *Menu) export(ctx context.Context) error {
	defaultPath := m.session.Options().DefaultExportPath
	answer, err := m.prompt(ctx, fmt.Sprintf("Output file name (default: %s): ", defaultPath))
	if err != nil {
		return err
	}
	written, err := m.session.Export(answer)
	if err != nil {
		m.fail(err)
		return nil
	}
	m.status(report.StatusOK, fmt.Sprintf("Results saved to '%s'", written))
	return nil
}

// requireAnalysis runs action only when an analysis exists, mirroring the
// check every query performs, so the user is not prompted for input first.
func (m *Menu) requireAnalysis(ctx context.Context, action func(context.Context) error) error {
	if err := m.session.Ready(); err != nil {
		m.fail(err)
		return nil
	}
	return action(ctx)
}

func (m *Menu) printStatistics() {
	stats, err := m.session.Statistics()
	if err != nil {
		if errors.Is(err, analysis.ErrNoAnalysis) {
			m.status(report.StatusWarn, "No words found in the input.")
			return
		}
		m.fail(err)
		return
	}
	m.println(report.Statistics(stats))
}

func (m *Menu) fail(err error) {
	kind := analysis.Kind(err)
	logging.WarnWithContext(m.logger, "action failed", kind, logging.Error(err))
	m.status(report.StatusError, userMessage(err))
}

func (m *Menu) finish(err error) error {
	switch {
	case errors.Is(err, errExit):
		m.println("Exiting...")
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		m.println("\nExiting...")
		return nil
	default:
		return err
	}
}

func (m *Menu) prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(m.out, label)
	return m.lines.ReadLine(ctx)
}

func (m *Menu) banner() {
	rule := strings.Repeat("=", bannerWidth)
	m.println(rule)
	m.println("WORD COUNTER AND FREQUENCY ANALYSIS")
	m.println(rule)
}

func (m *Menu) showMenu() {
	m.println("\nMENU:")
	for i, item := range menuItems {
		m.println(fmt.Sprintf("%d. %s", i+1, item))
	}
}

func (m *Menu) status(kind report.StatusKind, message string) {
	m.println(report.StatusLine(kind, message, m.colorize))
}

func (m *Menu) println(line string) {
	fmt.Fprintln(m.out, line)
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, analysis.ErrNoAnalysis):
		return "Analyze a file or text first!"
	case errors.Is(err, analysis.ErrEmptyInput):
		return "Input is empty!"
	case errors.Is(err, analysis.ErrFileNotFound):
		return "File not found: " + detail(err, analysis.ErrFileNotFound)
	case errors.Is(err, analysis.ErrDecode):
		return "File could not be read (encoding error): " + detail(err, analysis.ErrDecode)
	case errors.Is(err, analysis.ErrIO):
		return "I/O error: " + detail(err, analysis.ErrIO)
	default:
		return "Error: " + err.Error()
	}
}

// detail strips the sentinel prefix added by analysis.Wrap.
func detail(err, marker error) string {
	return strings.TrimPrefix(err.Error(), marker.Error()+": ")
}
