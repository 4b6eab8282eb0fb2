package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var mu sync.Mutex

var (
	verbose     = false
	forceStdErr = false
	colors      = true
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var coloredPrefixes = map[level]string{
	levelDebug: "\033[37m[DBG]\033[0m", // White
	levelInfo:  "\033[36m[INF]\033[0m", // Cyan
	levelWarn:  "\033[33m[WRN]\033[0m", // Yellow
	levelError: "\033[31m[ERR]\033[0m", // Red
}

var plainPrefixes = map[level]string{
	levelDebug: "[DBG]",
	levelInfo:  "[INF]",
	levelWarn:  "[WRN]",
	levelError: "[ERR]",
}

// SetVerbose enables or disables debug output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// SetForceStdErr sends every level to the error stream.
func SetForceStdErr(v bool) {
	mu.Lock()
	defer mu.Unlock()
	forceStdErr = v
}

// SetColors toggles ANSI colouring of level prefixes.
func SetColors(v bool) {
	mu.Lock()
	defer mu.Unlock()
	colors = v
}

// SetOutput replaces the output streams. A nil writer keeps the current one.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// ResetOutput restores os.Stdout and os.Stderr as output streams.
func ResetOutput() {
	SetOutput(os.Stdout, os.Stderr)
}

// Debugf logs a debug message if verbose is true.
func Debugf(format string, args ...interface{}) {
	logMessage(levelDebug, format, args...)
}

// Infof logs an info message.
func Infof(format string, args ...interface{}) {
	logMessage(levelInfo, format, args...)
}

// Warnf logs a warning message.
func Warnf(format string, args ...interface{}) {
	logMessage(levelWarn, format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	logMessage(levelError, format, args...)
}

// Fatalf logs an error message and exits the program.
func Fatalf(format string, args ...interface{}) {
	logMessage(levelError, format, args...)
	os.Exit(1)
}

func logMessage(lvl level, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if lvl == levelDebug && !verbose {
		return
	}

	prefix := plainPrefixes[lvl]
	if colors {
		prefix = coloredPrefixes[lvl]
	}
	output := prefix + " " + fmt.Sprintf(format, args...) + "\n"

	if forceStdErr || lvl == levelError {
		_, _ = io.WriteString(stderr, output)
	} else {
		_, _ = io.WriteString(stdout, output)
	}
}
