package report

import (
	"fmt"

	"github.com/fatih/color"
)

// StatusKind selects the label and color of a status line.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusOK
	StatusWarn
	StatusError
)

// StatusLine renders "[LABEL] message", colored when colorize is set.
func StatusLine(kind StatusKind, message string, colorize bool) string {
	line := fmt.Sprintf("[%s] %s", statusKindLabel(kind), message)
	if !colorize {
		return line
	}
	c := color.New(statusKindColor(kind))
	// The caller already decided the writer is a terminal.
	c.EnableColor()
	return c.Sprint(line)
}

func statusKindLabel(kind StatusKind) string {
	switch kind {
	case StatusOK:
		return "OK"
	case StatusWarn:
		return "WARN"
	case StatusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind StatusKind) color.Attribute {
	switch kind {
	case StatusOK:
		return color.FgGreen
	case StatusWarn:
		return color.FgYellow
	case StatusError:
		return color.FgRed
	default:
		return color.FgBlue
	}
}
