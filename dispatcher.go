package xsyslog

import (
	"sync"

	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xlog"
)

// Dispatcher forwards host log events to a backend connection, rendering
// each message from its format template and translating the host level
// through its LevelMap.
//
// A Dispatcher is either uninitialized (no backend connection) or active.
// The transition happens at most once, on the first successful Log call; a
// failed open leaves it uninitialized so the next call retries. Each
// Dispatcher owns its connection exclusively for the process lifetime;
// there is no explicit shutdown.
type Dispatcher struct {
	ident        string
	facility     Facility
	format       string
	callDepth    int
	levels       LevelMap
	levelMatcher LevelMatcher
	classMatcher ClassMatcher
	transport    Transport
	resolver     CallerResolver
	clock        xclock.Clock

	// mu guards lazy connection setup and serializes writes: Conn
	// implementations are not assumed safe for concurrent use.
	mu   sync.Mutex
	conn Conn
}

// Factory: internal constructor. Builder.Build has validated cfg.
func newDispatcher(cfg Config) *Dispatcher {
	d := &Dispatcher{
		ident:        cfg.Ident,
		facility:     cfg.Facility,
		format:       cfg.Format,
		callDepth:    cfg.CallDepth,
		levels:       cfg.Levels,
		levelMatcher: cfg.LevelMatcher,
		classMatcher: cfg.ClassMatcher,
		transport:    cfg.Transport,
		resolver:     cfg.Resolver,
		clock:        cfg.Clock,
	}
	if d.resolver == nil {
		d.resolver = runtimeResolver{}
	}
	if d.clock == nil {
		d.clock = xclock.System()
	}
	return d
}

// Accepts reports whether this dispatcher wants the event. The host
// framework evaluates it before calling Log; Log does not re-filter.
func (d *Dispatcher) Accepts(level xlog.Level, class string) bool {
	if d.levelMatcher != nil && !d.levelMatcher(level) {
		return false
	}
	if d.classMatcher != nil && !d.classMatcher(class) {
		return false
	}
	return true
}

// Log renders, translates and writes one event.
//
// The first call opens the backend connection with the configured ident and
// facility; exactly one connection is ever created, even under concurrent
// first calls. An open failure returns a *ConnectError and leaves the
// Dispatcher uninitialized. A write failure returns a *WriteError; the
// event is not retried or buffered.
func (d *Dispatcher) Log(ev Event) error {
	if ev.At.IsZero() {
		ev.At = d.clock.Now()
	}
	fr, resolved := d.resolver.Resolve(d.callDepth)
	msg := render(d.format, ev, fr, resolved)
	sev := d.levels.resolve(ev.Level)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.conn == nil {
		conn, err := d.transport.Open(d.ident, d.facility)
		if err != nil {
			return &ConnectError{Err: err}
		}
		d.conn = conn
	}
	if err := d.conn.Write(sev, msg); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
