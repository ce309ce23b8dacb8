package xsyslog

import (
	"strconv"

	"github.com/trickstertwo/xlog"
)

// LevelMap translates host levels into backend severities. It must be total
// over the six canonical xlog levels; Builder rejects partial maps before a
// Dispatcher ever sees an event.
type LevelMap map[xlog.Level]Severity

// DefaultLevelMap returns the standard translation table. Trace and Debug
// collapse into the backend debug tier; Fatal escalates to Alert so it
// reaches durable storage rather than an ephemeral console.
func DefaultLevelMap() LevelMap {
	return LevelMap{
		xlog.LevelTrace: SeverityDebug,
		xlog.LevelDebug: SeverityDebug,
		xlog.LevelInfo:  SeverityInfo,
		xlog.LevelWarn:  SeverityWarning,
		xlog.LevelError: SeverityError,
		xlog.LevelFatal: SeverityAlert,
	}
}

// canonicalLevels ordered from least to most severe.
var canonicalLevels = []xlog.Level{
	xlog.LevelTrace,
	xlog.LevelDebug,
	xlog.LevelInfo,
	xlog.LevelWarn,
	xlog.LevelError,
	xlog.LevelFatal,
}

func (m LevelMap) validate() error {
	for _, l := range canonicalLevels {
		if _, ok := m[l]; !ok {
			return &ConfigError{Reason: "level map has no entry for " + levelName(l)}
		}
	}
	return nil
}

// resolve is total at runtime: off-grid numeric levels are clamped onto the
// canonical six first.
func (m LevelMap) resolve(l xlog.Level) Severity {
	return m[canonicalLevel(l)]
}

func canonicalLevel(l xlog.Level) xlog.Level {
	switch {
	case l <= xlog.LevelTrace:
		return xlog.LevelTrace
	case l <= xlog.LevelDebug:
		return xlog.LevelDebug
	case l <= xlog.LevelInfo:
		return xlog.LevelInfo
	case l <= xlog.LevelWarn:
		return xlog.LevelWarn
	case l <= xlog.LevelError:
		return xlog.LevelError
	default:
		return xlog.LevelFatal
	}
}

func levelName(l xlog.Level) string {
	switch l {
	case xlog.LevelTrace:
		return "Trace"
	case xlog.LevelDebug:
		return "Debug"
	case xlog.LevelInfo:
		return "Info"
	case xlog.LevelWarn:
		return "Warn"
	case xlog.LevelError:
		return "Error"
	case xlog.LevelFatal:
		return "Fatal"
	default:
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
}
