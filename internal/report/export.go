package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"wordcounter/internal/analysis"
	"wordcounter/internal/logging"
)

// DefaultExportRows is the number of ranked words written to a report.
const DefaultExportRows = 50

const (
	exportTitle      = "KELİME FREKANS ANALİZİ"
	exportTopHeading = "EN SIK KULLANILAN KELİMELER"
	exportTotalLabel = "Toplam kelime sayısı"
	exportUniqLabel  = "Benzersiz kelime sayısı"
)

// WriteExport writes the plain-text report for src to w. Only the rows most
// frequent words are listed. It returns analysis.ErrNoAnalysis when src holds
// no words.
func WriteExport(w io.Writer, src Source, rows int) error {
	if src.TotalWords() == 0 {
		return analysis.ErrNoAnalysis
	}
	if rows <= 0 {
		rows = DefaultExportRows
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, exportTitle)
	fmt.Fprintln(bw, strings.Repeat("=", 50))
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "%s: %d\n", exportTotalLabel, src.TotalWords())
	fmt.Fprintf(bw, "%s: %d\n", exportUniqLabel, src.UniqueWords())
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, exportTopHeading)
	fmt.Fprintln(bw, strings.Repeat("-", 30))
	for _, entry := range src.TopWords(rows) {
		fmt.Fprintf(bw, "%-20s %6d (%5.2f%%)\n", entry.Word, entry.Count, src.Percentage(entry.Count))
	}
	return bw.Flush()
}

// Exporter writes reports to files.
type Exporter struct {
	logger *slog.Logger
	rows   int
}

// NewExporter returns an exporter that lists rows words per report.
func NewExporter(rows int, logger *slog.Logger) *Exporter {
	if rows <= 0 {
		rows = DefaultExportRows
	}
	return &Exporter{
		logger: logging.NewComponentLogger(logger, "report"),
		rows:   rows,
	}
}

// Export writes the report for src to path, replacing any existing file.
// A sibling "<path>.lock" file is held for the duration of the write so two
// exports to the same path never interleave.
func (e *Exporter) Export(path string, src Source) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return analysis.Wrap(analysis.ErrIO, "export", "(empty path)", errors.New("no output path"))
	}
	if src.TotalWords() == 0 {
		return analysis.ErrNoAnalysis
	}

	if err := checkWritableDir(filepath.Dir(path)); err != nil {
		return analysis.Wrap(analysis.ErrIO, "export", path, err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return analysis.Wrap(analysis.ErrIO, "lock", path, err)
	}
	if !locked {
		return analysis.Wrap(analysis.ErrIO, "lock", path, errors.New("another export to this file is in progress"))
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			e.logger.Warn("release export lock failed", logging.String("path", path), logging.Error(err))
		}
		_ = os.Remove(lock.Path())
	}()

	if err := e.writeFile(path, src); err != nil {
		return analysis.Wrap(analysis.ErrIO, "export", path, err)
	}

	e.logger.Info("report exported",
		logging.String("path", path),
		logging.Int("rows", min(e.rows, src.UniqueWords())),
	)
	return nil
}

func (e *Exporter) writeFile(path string, src Source) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()
	return WriteExport(file, src, e.rows)
}

// checkWritableDir fails when dir is missing, not a directory, or not writable
// by the current user.
func checkWritableDir(dir string) error {
	if dir == "" {
		dir = "."
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output directory %s is not a directory", dir)
	}
	if err := unix.Access(dir, unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	return nil
}
