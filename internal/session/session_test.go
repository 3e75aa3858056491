package session

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"wordcounter/internal/analysis"
	"wordcounter/internal/config"
	"wordcounter/internal/testsupport"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return New(OptionsFromConfig(testsupport.NewConfig(t)), nil)
}

func TestFreshSessionRejectsQueries(t *testing.T) {
	s := newTestSession(t)

	if _, err := s.Statistics(); !errors.Is(err, analysis.ErrNoAnalysis) {
		t.Fatalf("Statistics error = %v", err)
	}
	if _, err := s.TopWords(10); !errors.Is(err, analysis.ErrNoAnalysis) {
		t.Fatalf("TopWords error = %v", err)
	}
	if _, err := s.Search("word"); !errors.Is(err, analysis.ErrNoAnalysis) {
		t.Fatalf("Search error = %v", err)
	}
	target := filepath.Join(t.TempDir(), "out.txt")
	if _, err := s.Export(target); !errors.Is(err, analysis.ErrNoAnalysis) {
		t.Fatalf("Export error = %v", err)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatal("export must not create a file before analysis")
	}
	if s.Result().TotalWords() != 0 {
		t.Fatalf("TotalWords = %d, want 0", s.Result().TotalWords())
	}
}

func TestAnalyzeTextAndQueries(t *testing.T) {
	s := newTestSession(t)
	if err := s.AnalyzeText("cat, cat! dog."); err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}

	stats, err := s.Statistics()
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if stats.TotalWords != 3 || stats.UniqueWords != 2 || stats.AverageRepetition != 1.5 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	top, err := s.TopWords(5)
	if err != nil {
		t.Fatalf("TopWords: %v", err)
	}
	if !slices.Equal(top, []analysis.WordCount{{Word: "cat", Count: 2}, {Word: "dog", Count: 1}}) {
		t.Fatalf("TopWords = %v", top)
	}

	lookup, err := s.Search("  Missing ")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if lookup.Found() || lookup.Word != "Missing" {
		t.Fatalf("Search(missing) = %+v", lookup)
	}
	if _, err := s.Search("   "); !errors.Is(err, analysis.ErrEmptyInput) {
		t.Fatalf("Search(blank) error = %v", err)
	}
}

func TestBlankTextKeepsPreviousAnalysis(t *testing.T) {
	s := newTestSession(t)
	if err := s.AnalyzeText("one two two"); err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}
	if err := s.AnalyzeText(" \n\t "); !errors.Is(err, analysis.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if s.Result().TotalWords() != 3 {
		t.Fatalf("previous analysis lost: total=%d", s.Result().TotalWords())
	}
}

func TestAnalyzeFile(t *testing.T) {
	s := newTestSession(t)
	path := testsupport.WriteText(t, filepath.Join(t.TempDir(), "doc.txt"), "Go go GO gopher")

	if err := s.AnalyzeFile(path); err != nil {
		t.Fatalf("AnalyzeFile: %v", err)
	}
	lookup, err := s.Search("go")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if lookup.Count != 3 || lookup.Percentage != 75 {
		t.Fatalf("Search(go) = %+v", lookup)
	}
}

func TestFailedFileAnalysisKeepsState(t *testing.T) {
	s := newTestSession(t)
	if err := s.AnalyzeText("keep me"); err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}

	dir := t.TempDir()
	bad := testsupport.WriteBytes(t, filepath.Join(dir, "bad.txt"), []byte{0xff, 0xfe, 'a'})

	if err := s.AnalyzeFile(filepath.Join(dir, "missing.txt")); !errors.Is(err, analysis.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
	if err := s.AnalyzeFile(bad); !errors.Is(err, analysis.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if got := s.Result().TotalWords(); got != 2 {
		t.Fatalf("TotalWords = %d, want 2", got)
	}
}

func TestEmptyFileHasNoStatistics(t *testing.T) {
	s := newTestSession(t)
	path := testsupport.WriteText(t, filepath.Join(t.TempDir(), "empty.txt"), "")

	if err := s.AnalyzeFile(path); err != nil {
		t.Fatalf("AnalyzeFile: %v", err)
	}
	if _, err := s.Statistics(); !errors.Is(err, analysis.ErrNoAnalysis) {
		t.Fatalf("expected ErrNoAnalysis, got %v", err)
	}
}

func TestExportDefaultPath(t *testing.T) {
	t.Chdir(t.TempDir())
	s := newTestSession(t)
	if err := s.AnalyzeText("the the the fox"); err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}

	written, err := s.Export("  ")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if written != config.Default().Export.DefaultPath {
		t.Fatalf("Export wrote %q", written)
	}
	content, err := os.ReadFile(written)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	for _, want := range []string{"Toplam kelime sayısı: 4", "(75.00%)", "(25.00%)"} {
		if !strings.Contains(string(content), want) {
			t.Fatalf("expected %q in export:\n%s", want, content)
		}
	}
}

func TestSessionLanguage(t *testing.T) {
	opts := OptionsFromConfig(testsupport.NewConfig(t, testsupport.WithLanguage("tr")))
	if opts.Language.String() != "tr" {
		t.Fatalf("Language = %v", opts.Language)
	}
	s := New(opts, nil)
	if err := s.AnalyzeText("KIŞ kış"); err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}
	if top, _ := s.TopWords(1); len(top) != 1 || top[0] != (analysis.WordCount{Word: "kış", Count: 2}) {
		t.Fatalf("TopWords = %v", top)
	}
}

func TestOptionsDefaults(t *testing.T) {
	s := New(Options{}, nil)
	opts := s.Options()
	if opts.DefaultTopN != 10 || opts.ExportRows != 50 || opts.DefaultExportPath != "word_analysis.txt" || opts.Terminator != "END" {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
}
