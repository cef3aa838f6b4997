package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	fcolor "github.com/fatih/color"
)

var (
	enabled   bool
	enabledMu sync.RWMutex
	noColor   bool
	noColorMu sync.RWMutex
	out       io.Writer = os.Stderr
	outMu     sync.RWMutex
)

var (
	labelColor = fcolor.New(fcolor.FgCyan)
	timeColor  = fcolor.New(fcolor.FgHiBlack)
)

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	enabledMu.Lock()
	defer enabledMu.Unlock()
	enabled = enable
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	enabledMu.RLock()
	defer enabledMu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	noColorMu.Lock()
	defer noColorMu.Unlock()
	noColor = disable
}

// SetOutput redirects debug output. nil restores stderr.
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
}

func writer() io.Writer {
	outMu.RLock()
	defer outMu.RUnlock()
	return out
}

func useColor() bool {
	noColorMu.RLock()
	defer noColorMu.RUnlock()
	return !noColor && !fcolor.NoColor
}

// prefix builds the "[DEBUG] hh:mm:ss.mmm" lead-in of every line.
func prefix() string {
	timestamp := time.Now().Format("15:04:05.000")
	if useColor() {
		return labelColor.Sprint("[DEBUG]") + " " + timeColor.Sprint(timestamp)
	}
	return "[DEBUG] " + timestamp
}

// highlight colors a key or section name when color is on.
func highlight(s string) string {
	if useColor() {
		return labelColor.Sprint(s)
	}
	return s
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	fmt.Fprintf(writer(), "%s %s\n", prefix(), fmt.Sprintf(format, args...))
}

// Debugf is an alias for Debug
func Debugf(format string, args ...interface{}) {
	Debug(format, args...)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	fmt.Fprintf(writer(), "%s %s\n", prefix(), highlight("=== "+section+" ==="))
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	fmt.Fprintf(writer(), "%s %s = %v\n", prefix(), highlight(key), value)
}

// DebugJSON prints structured data as JSON for debugging
func DebugJSON(key string, v interface{}) {
	if !IsEnabled() {
		return
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		Debug("Failed to marshal %s to JSON: %v", key, err)
		return
	}

	fmt.Fprintf(writer(), "%s %s:\n%s\n", prefix(), highlight(key), string(jsonBytes))
}
