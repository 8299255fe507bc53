package logger

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

var (
	timeColor    = color.New(color.FgHiBlack)
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	debugColor   = color.New(color.FgCyan)
	methodColor  = color.New(color.FgMagenta)
)

func prefix() string {
	return timeColor.Sprintf("[%s]", time.Now().Format("15:04:05"))
}

// Info log une information générale (bleu)
func Info(message string, args ...interface{}) {
	fmt.Printf("%s %s\n", prefix(), infoColor.Sprintf(message, args...))
}

// Success log un succès (vert)
func Success(message string, args ...interface{}) {
	fmt.Printf("%s %s\n", prefix(), successColor.Sprintf("✓ "+message, args...))
}

// Warning log un avertissement (jaune)
func Warning(message string, args ...interface{}) {
	fmt.Printf("%s %s\n", prefix(), warnColor.Sprintf("⚠ "+message, args...))
}

// Error log une erreur (rouge)
func Error(message string, args ...interface{}) {
	fmt.Printf("%s %s\n", prefix(), errorColor.Sprintf("✗ "+message, args...))
}

// Debug log un message de debug (cyan) - utilisé seulement en développement
func Debug(message string, args ...interface{}) {
	fmt.Printf("%s %s\n", prefix(), debugColor.Sprintf(message, args...))
}

// Request log une requête HTTP terminée, colorée selon le status code
func Request(method, path string, statusCode int, duration time.Duration) {
	statusColor := errorColor
	switch {
	case statusCode >= 200 && statusCode < 300:
		statusColor = successColor
	case statusCode >= 300 && statusCode < 400:
		statusColor = debugColor
	case statusCode >= 400 && statusCode < 500:
		statusColor = warnColor
	}

	durationStr := ""
	if duration < time.Millisecond {
		durationStr = fmt.Sprintf("%dµs", duration.Microseconds())
	} else if duration < time.Second {
		durationStr = fmt.Sprintf("%dms", duration.Milliseconds())
	} else {
		durationStr = fmt.Sprintf("%.2fs", duration.Seconds())
	}

	fmt.Printf("%s %s %-50s %s %s\n",
		prefix(),
		methodColor.Sprintf("%-6s", method),
		path,
		statusColor.Sprintf("[%d]", statusCode),
		timeColor.Sprintf("(%s)", durationStr))
}
