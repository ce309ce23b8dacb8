package xsyslog

import (
	"time"

	"github.com/trickstertwo/xlog"
)

// Event is one structured log event handed over by the host framework.
// The dispatcher reads it and never mutates it.
type Event struct {
	Level       xlog.Level
	SourceClass string
	Message     string
	At          time.Time
}
