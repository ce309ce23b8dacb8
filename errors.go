package xsyslog

// ConfigError reports invalid Dispatcher configuration. It is returned by
// Builder.Build and never deferred to the first Log call.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "xsyslog: invalid configuration: " + e.Reason
}

// ConnectError wraps a Transport.Open failure on first use. The Dispatcher
// stays uninitialized and retries the open on its next Log call.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string { return "xsyslog: open backend: " + e.Err.Error() }
func (e *ConnectError) Unwrap() error { return e.Err }

// WriteError wraps a Conn.Write failure. The event is not retried or
// buffered.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return "xsyslog: backend write: " + e.Err.Error() }
func (e *WriteError) Unwrap() error { return e.Err }
