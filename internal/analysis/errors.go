package analysis

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrDecode       = errors.New("invalid text encoding")
	ErrIO           = errors.New("i/o error")
	ErrEmptyInput   = errors.New("empty input")
	ErrNoAnalysis   = errors.New("no analysis available")
)

// Wrap tags err with one of the sentinel markers above and prefixes the
// operation and subject (usually a path) so the message is readable on its own.
func Wrap(marker error, operation, subject string, err error) error {
	if marker == nil {
		marker = ErrIO
	}
	detail := buildDetail(operation, subject)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind classifies err into a short label suitable for an event_type log field.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrFileNotFound):
		return "file_not_found"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, ErrNoAnalysis):
		return "no_analysis"
	case errors.Is(err, ErrIO):
		return "io"
	default:
		return "unknown"
	}
}

func buildDetail(operation, subject string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if subject = strings.TrimSpace(subject); subject != "" {
		parts = append(parts, subject)
	}
	if len(parts) == 0 {
		return "analysis failure"
	}
	return strings.Join(parts, " ")
}
