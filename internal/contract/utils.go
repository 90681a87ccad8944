package contract

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/dashviz/schema"
	"github.com/sirupsen/logrus"
)

// Color variables for console output.
var (
	MountColor = color.New(color.FgGreen, color.Bold) // MountColor marks a visualization being mounted.
	TextColor  = color.New(color.FgYellow)            // TextColor marks a fallback message.
	NoopColor  = color.New(color.FgHiBlack)           // NoopColor marks a skipped target.
)

// GetPlainKind returns the display label for an action kind.
// This is the core logic used for CSV and table printing.
func GetPlainKind(kind schema.ActionKind) string {
	switch kind {
	case schema.MountChartAction:
		return "Chart"
	case schema.MountWordCloudAction:
		return "Word Cloud"
	case schema.ShowTextAction:
		return "Fallback"
	default:
		return "Skip"
	}
}

// GetColorKind returns a colored label for console output (table).
func GetColorKind(kind schema.ActionKind) string {
	text := GetPlainKind(kind)

	switch kind {
	case schema.MountChartAction, schema.MountWordCloudAction:
		return MountColor.Sprint(text)
	case schema.ShowTextAction:
		return TextColor.Sprint(text)
	default:
		return NoopColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It falls back to os.Stdout when the path is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// NewLogger builds the structured logger used as the error channel.
func NewLogger(w io.Writer, level logrus.Level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logger
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is space for the "..." and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
