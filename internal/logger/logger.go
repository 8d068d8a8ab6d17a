package logger

import (
	"fmt"
	"os"
)

const (
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func printTagged(color, level, tag, msg string) {
	fmt.Fprintf(os.Stdout, "%s[%s]%s %s%-10s%s %s\n", color, level, colorReset, colorDim, tag, colorReset, msg)
}

// Info logs an informational message with a component tag.
func Info(tag, msg string) {
	printTagged(colorCyan, "INFO", tag, msg)
}

// Success logs a success message with a component tag.
func Success(tag, msg string) {
	printTagged(colorGreen, " OK ", tag, msg)
}

// Warn logs a warning with a component tag.
func Warn(tag, msg string) {
	printTagged(colorYellow, "WARN", tag, msg)
}

// Error logs an error with a component tag.
func Error(tag, msg string) {
	printTagged(colorRed, "FAIL", tag, msg)
}

// Banner prints the startup banner with the build version.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	fmt.Fprintf(os.Stdout, "%s%sneoscout%s %s— near-Earth object close-approach explorer (%s)%s\n",
		colorBold, colorCyan, colorReset, colorDim, version, colorReset)
}

// Section prints a section divider used before a block of Stats lines.
func Section(title string) {
	fmt.Fprintf(os.Stdout, "%s── %s %s\n", colorDim, title, "──────────────────────────────"+colorReset)
}

// Stats prints an aligned key/count line under a Section header.
func Stats(key string, n int) {
	fmt.Fprintf(os.Stdout, "   %-18s %d\n", key, n)
}
