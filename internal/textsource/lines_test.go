package textsource

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestCollectLinesStopsAtTerminator(t *testing.T) {
	lines := NewLineReader(strings.NewReader("first line\r\nsecond\n  END  \nafter\n"))

	text, err := CollectLines(context.Background(), lines, "END")
	if err != nil {
		t.Fatalf("CollectLines: %v", err)
	}
	if text != "first line\nsecond" {
		t.Fatalf("CollectLines = %q", text)
	}

	next, err := lines.ReadLine(context.Background())
	if err != nil || next != "after" {
		t.Fatalf("ReadLine after terminator = %q, %v", next, err)
	}
}

func TestCollectLinesEOFBeforeTerminator(t *testing.T) {
	lines := NewLineReader(strings.NewReader("only\nlines"))

	text, err := CollectLines(context.Background(), lines, "END")
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if text != "only\nlines" {
		t.Fatalf("CollectLines = %q", text)
	}
	if _, err := lines.ReadLine(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("expected sticky io.EOF, got %v", err)
	}
}

func TestReadLineHonoursCancellation(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	lines := NewLineReader(pr)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	if _, err := lines.ReadLine(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
