//go:build !windows && !plan9

// Package syslogtransport provides the default xsyslog.Transport, backed by
// the platform system logger.
package syslogtransport

import (
	"log/syslog"

	"github.com/pkg/errors"

	"github.com/trickstertwo/xsyslog"
)

// Transport dials the local syslog daemon. The zero value is ready to use.
type Transport struct{}

var _ xsyslog.Transport = (*Transport)(nil)

func New() *Transport { return &Transport{} }

// Open implements xsyslog.Transport.
func (*Transport) Open(ident string, facility xsyslog.Facility) (xsyslog.Conn, error) {
	w, err := syslog.New(priority(facility), ident)
	if err != nil {
		return nil, errors.Wrap(err, "dial syslog")
	}
	return &conn{w: w}, nil
}

type conn struct {
	w *syslog.Writer
}

// Write implements xsyslog.Conn. The Dispatcher serializes calls, so no
// locking is needed here.
func (c *conn) Write(sev xsyslog.Severity, msg string) error {
	var err error
	switch sev {
	case xsyslog.SeverityEmergency:
		err = c.w.Emerg(msg)
	case xsyslog.SeverityAlert:
		err = c.w.Alert(msg)
	case xsyslog.SeverityCritical:
		err = c.w.Crit(msg)
	case xsyslog.SeverityError:
		err = c.w.Err(msg)
	case xsyslog.SeverityWarning:
		err = c.w.Warning(msg)
	case xsyslog.SeverityNotice:
		err = c.w.Notice(msg)
	case xsyslog.SeverityInfo:
		err = c.w.Info(msg)
	default:
		err = c.w.Debug(msg)
	}
	return errors.Wrap(err, "write syslog")
}

// priority folds the facility into a syslog.Priority; the per-message
// severity is selected by the Write switch.
func priority(f xsyslog.Facility) syslog.Priority {
	return syslog.Priority(int(f) << 3)
}
