package xyoga

import "strings"

// LogLevel mirrors the engine's YGLogLevel numbering so values cross the
// boundary without translation.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelVerbose
	LogLevelFatal
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelError:
		return "error"
	case LogLevelWarn:
		return "warn"
	case LogLevelInfo:
		return "info"
	case LogLevelDebug:
		return "debug"
	case LogLevelVerbose:
		return "verbose"
	case LogLevelFatal:
		return "fatal"
	}
	return "unknown"
}

// Severity orders levels from least to most important. The engine's numbering
// is not monotonic (Error is 0, Fatal is 5), so filters must compare
// severities, never raw levels.
func (l LogLevel) Severity() int {
	switch l {
	case LogLevelVerbose:
		return 0
	case LogLevelDebug:
		return 1
	case LogLevelInfo:
		return 2
	case LogLevelWarn:
		return 3
	case LogLevelError:
		return 4
	case LogLevelFatal:
		return 5
	}
	return -1
}

// Enabled reports whether l is at least as severe as min.
func (l LogLevel) Enabled(min LogLevel) bool {
	return l.Severity() >= min.Severity()
}

// ParseLogLevel accepts the names produced by String plus "warning" and
// "trace" (alias of verbose). Unknown input yields LogLevelInfo, false.
func ParseLogLevel(s string) (LogLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LogLevelError, true
	case "warn", "warning":
		return LogLevelWarn, true
	case "info":
		return LogLevelInfo, true
	case "debug":
		return LogLevelDebug, true
	case "verbose", "trace":
		return LogLevelVerbose, true
	case "fatal":
		return LogLevelFatal, true
	}
	return LogLevelInfo, false
}

// Threshold is an optional minimum level. The zero value accepts every level,
// which a bare LogLevel cannot express since LogLevelError is zero.
type Threshold struct {
	Level LogLevel
	Set   bool
}

// AtLeast returns a Threshold accepting l and anything more severe.
func AtLeast(l LogLevel) Threshold { return Threshold{Level: l, Set: true} }

// Allows reports whether l passes the threshold.
func (t Threshold) Allows(l LogLevel) bool {
	return !t.Set || l.Enabled(t.Level)
}
