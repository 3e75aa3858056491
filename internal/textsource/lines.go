package textsource

import (
	"bufio"
	"context"
	"io"
	"strings"
)

const maxLineBytes = 1 << 20

type lineResult struct {
	line string
	err  error
}

// LineReader delivers lines from an io.Reader while honouring context
// cancellation. A single goroutine owns the underlying reader; a blocked read
// does not keep ReadLine from returning when ctx is done.
type LineReader struct {
	results chan lineResult
	done    bool
	err     error
}

// NewLineReader starts reading r in the background.
func NewLineReader(r io.Reader) *LineReader {
	results := make(chan lineResult)
	go func() {
		defer close(results)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for scanner.Scan() {
			results <- lineResult{line: strings.TrimSuffix(scanner.Text(), "\r")}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		results <- lineResult{err: err}
	}()
	return &LineReader{results: results}
}

// ReadLine returns the next line without its terminator. It returns io.EOF once
// the input is exhausted and ctx.Err() when ctx is cancelled first.
func (l *LineReader) ReadLine(ctx context.Context) (string, error) {
	if l.done {
		return "", l.err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-l.results:
		if !ok {
			l.done, l.err = true, io.EOF
			return "", l.err
		}
		if res.err != nil {
			l.done, l.err = true, res.err
			return "", res.err
		}
		return res.line, nil
	}
}

// CollectLines reads lines until one whose trimmed value equals terminator and
// joins everything before it with newlines. When the input ends first, the
// lines read so far are returned together with io.EOF.
func CollectLines(ctx context.Context, lines *LineReader, terminator string) (string, error) {
	var collected []string
	for {
		line, err := lines.ReadLine(ctx)
		if err != nil {
			return strings.Join(collected, "\n"), err
		}
		if strings.TrimSpace(line) == terminator {
			return strings.Join(collected, "\n"), nil
		}
		collected = append(collected, line)
	}
}
