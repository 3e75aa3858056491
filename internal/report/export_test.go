package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"wordcounter/internal/analysis"
)

func analyzed(t *testing.T, text string) *analysis.Analyzer {
	t.Helper()
	a := analysis.New(nil, nil)
	a.Analyze("test", text)
	return a
}

func TestWriteExportLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteExport(&buf, analyzed(t, "the fox, the THE."), 50); err != nil {
		t.Fatalf("WriteExport: %v", err)
	}

	want := strings.Join([]string{
		"KELİME FREKANS ANALİZİ",
		"==================================================",
		"",
		"Toplam kelime sayısı: 4",
		"Benzersiz kelime sayısı: 2",
		"",
		"EN SIK KULLANILAN KELİMELER",
		"------------------------------",
		"the                       3 (75.00%)",
		"fox                       1 (25.00%)",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteExportPadsByCharacters(t *testing.T) {
	words := strings.Repeat("filler ", 38) + "çok çok"
	var buf bytes.Buffer
	if err := WriteExport(&buf, analyzed(t, words), 50); err != nil {
		t.Fatalf("WriteExport: %v", err)
	}
	if !strings.Contains(buf.String(), "çok                       2 ( 5.00%)\n") {
		t.Fatalf("expected rune-padded row, got:\n%s", buf.String())
	}
}

func TestWriteExportLimitsRows(t *testing.T) {
	var text strings.Builder
	for i := range 60 {
		fmt.Fprintf(&text, "w%d ", i)
	}
	var buf bytes.Buffer
	if err := WriteExport(&buf, analyzed(t, text.String()), 50); err != nil {
		t.Fatalf("WriteExport: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if rows := len(lines) - 8; rows != 50 {
		t.Fatalf("expected 50 ranked rows, got %d", rows)
	}
	if !strings.HasPrefix(lines[8], "w0 ") || !strings.HasPrefix(lines[len(lines)-1], "w49 ") {
		t.Fatalf("rows should follow first occurrence on ties: first=%q last=%q", lines[8], lines[len(lines)-1])
	}
}

func TestWriteExportWithoutAnalysis(t *testing.T) {
	var buf bytes.Buffer
	err := WriteExport(&buf, analysis.New(nil, nil), 50)
	if !errors.Is(err, analysis.ErrNoAnalysis) {
		t.Fatalf("expected ErrNoAnalysis, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestExporterWritesFileAndReleasesLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(path, []byte("stale content that is longer than the report would be..."), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	exporter := NewExporter(0, nil)
	if err := exporter.Export(path, analyzed(t, "the the the fox")); err != nil {
		t.Fatalf("Export: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.HasPrefix(string(content), "KELİME FREKANS ANALİZİ\n") {
		t.Fatalf("unexpected report content: %q", content)
	}
	if strings.Contains(string(content), "stale") {
		t.Fatalf("report should replace existing content: %q", content)
	}
	if !strings.Contains(string(content), "(75.00%)") || !strings.Contains(string(content), "(25.00%)") {
		t.Fatalf("missing percentages: %q", content)
	}
	if _, err := os.Stat(path + ".lock"); !os.IsNotExist(err) {
		t.Fatalf("expected lock file to be removed, stat err = %v", err)
	}
}

func TestExporterRejectsConcurrentExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	held := flock.New(path + ".lock")
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("acquire test lock: ok=%v err=%v", ok, err)
	}
	defer held.Unlock()

	err = NewExporter(50, nil).Export(path, analyzed(t, "a b"))
	if !errors.Is(err, analysis.ErrIO) {
		t.Fatalf("expected ErrIO while locked, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("report should not be written while locked")
	}
}

func TestExporterErrors(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(50, nil)

	if err := exporter.Export(filepath.Join(dir, "report.txt"), analysis.New(nil, nil)); !errors.Is(err, analysis.ErrNoAnalysis) {
		t.Fatalf("expected ErrNoAnalysis, got %v", err)
	}
	if err := exporter.Export(filepath.Join(dir, "missing", "report.txt"), analyzed(t, "x")); !errors.Is(err, analysis.ErrIO) {
		t.Fatalf("expected ErrIO for missing directory, got %v", err)
	}
	if err := exporter.Export("   ", analyzed(t, "x")); !errors.Is(err, analysis.ErrIO) {
		t.Fatalf("expected ErrIO for empty path, got %v", err)
	}
}

func TestExporterReadOnlyDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permissions")
	}
	dir := filepath.Join(t.TempDir(), "ro")
	if err := os.Mkdir(dir, 0o555); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	err := NewExporter(50, nil).Export(filepath.Join(dir, "report.txt"), analyzed(t, "x"))
	if !errors.Is(err, analysis.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
	if !strings.Contains(err.Error(), "not writable") {
		t.Fatalf("unexpected message: %v", err)
	}
}
