package xsyslog

import "github.com/trickstertwo/xlog"

// DefaultClassField is the entry field key carrying the originating class
// name, for hosts that attach it as a structured field.
const DefaultClassField = "class"

// Observer bridges an xlog.Logger to a Dispatcher (Observer pattern).
// Register it with xlog.Logger.AddObserver; it evaluates the dispatcher's
// matchers host-side and forwards accepted entries as Events.
//
// OnLog has no error return, so dispatch failures are delivered to the
// optional error hook. With no hook installed they are dropped, which is
// the host choosing to ignore them.
type Observer struct {
	dispatcher *Dispatcher
	classField string
	onError    func(error)
}

var _ xlog.Observer = (*Observer)(nil)

func NewObserver(d *Dispatcher) *Observer {
	return &Observer{dispatcher: d, classField: DefaultClassField}
}

// WithClassField overrides the field key used to extract the class name.
func (o *Observer) WithClassField(key string) *Observer {
	o.classField = key
	return o
}

// WithErrorHook installs fn to receive dispatch failures.
func (o *Observer) WithErrorHook(fn func(error)) *Observer {
	o.onError = fn
	return o
}

// OnLog implements xlog.Observer.
func (o *Observer) OnLog(e xlog.Entry) {
	class := o.classOf(e.Fields)
	if !o.dispatcher.Accepts(e.Level, class) {
		return
	}
	err := o.dispatcher.Log(Event{
		Level:       e.Level,
		SourceClass: class,
		Message:     e.Message,
		At:          e.At,
	})
	if err != nil && o.onError != nil {
		o.onError(err)
	}
}

func (o *Observer) classOf(fields []xlog.Field) string {
	for i := range fields {
		if fields[i].K == o.classField && fields[i].Kind == xlog.KindString {
			return fields[i].Str
		}
	}
	return ""
}
