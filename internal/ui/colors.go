package ui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ANSI color codes
const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	blue   = "\033[34m"
)

// isTTY checks if stdout is a terminal
func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// colorize applies color only if output is a TTY
func colorize(color, msg string) string {
	if !isTTY() {
		return msg
	}
	return color + msg + reset
}

// OK formats a success message with [OK] prefix in green
func OK(msg string) string {
	return fmt.Sprintf("%s %s", colorize(green, "[OK]"), msg)
}

// Error formats an error message with [ERROR] prefix in red
func Error(msg string) string {
	return fmt.Sprintf("%s %s", colorize(red, "[ERROR]"), msg)
}

// Warn formats a warning message with [WARN] prefix in yellow
func Warn(msg string) string {
	return fmt.Sprintf("%s %s", colorize(yellow, "[WARN]"), msg)
}

// Info formats an info message with [INFO] prefix in blue
func Info(msg string) string {
	return fmt.Sprintf("%s %s", colorize(blue, "[INFO]"), msg)
}
