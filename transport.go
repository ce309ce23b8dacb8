package xsyslog

// Transport is the backend connection Strategy (e.g. a syslog dialer).
// Open may fail; the Dispatcher surfaces that as a *ConnectError and
// retries on its next Log call.
type Transport interface {
	Open(ident string, facility Facility) (Conn, error)
}

// Conn is one connection to the backend. Implementations are not required
// to be safe for concurrent writes; the Dispatcher serializes Write calls.
// There is no Close: a Conn lives as long as its Dispatcher, which lives as
// long as the process.
type Conn interface {
	Write(severity Severity, message string) error
}
