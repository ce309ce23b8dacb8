package xsyslog

import (
	"runtime"
	"strings"
)

// Unknown is substituted for caller-context placeholders that cannot be
// resolved from the active call stack.
const Unknown = "unknown"

// Frame is the caller context resolved for one log call.
type Frame struct {
	Class      string
	Subroutine string
	File       string
	Line       int
}

// CallerResolver resolves the caller context at a given stack depth.
// depth counts frames above the Resolve invocation: 0 is Resolve's caller,
// 1 its caller's caller, and so on. The Dispatcher passes its configured
// call depth, whose default of DefaultCallDepth reaches the emitting code
// through the standard Dispatcher.Log -> Observer.OnLog -> host emit ->
// host builder chain. A stack shallower than depth yields ok=false.
//
// The default implementation reads the Go runtime stack. Inserting or
// removing wrapper functions between the emitting code and the Dispatcher
// shifts the effective depth; reconfigure the Dispatcher's call depth
// rather than the resolver.
//
// Implementations must be safe for concurrent use.
type CallerResolver interface {
	Resolve(depth int) (Frame, bool)
}

type runtimeResolver struct{}

func (runtimeResolver) Resolve(depth int) (Frame, bool) {
	var pcs [1]uintptr
	// +2 skips the runtime.Callers frame and Resolve itself, anchoring
	// depth 0 at Resolve's caller.
	if runtime.Callers(depth+2, pcs[:]) == 0 {
		return Frame{}, false
	}
	fr, _ := runtime.CallersFrames(pcs[:]).Next()
	if fr.Function == "" {
		return Frame{}, false
	}
	class, sub := splitFunction(fr.Function)
	return Frame{Class: class, Subroutine: sub, File: fr.File, Line: fr.Line}, true
}

// splitFunction splits a fully qualified Go function name into receiver
// type and bare subroutine name. Handles the "pkg.Func", "pkg.Type.Method"
// and "pkg.(*Type).Method" forms; top-level functions have no class.
func splitFunction(full string) (class, sub string) {
	if i := strings.LastIndexByte(full, '/'); i >= 0 {
		full = full[i+1:]
	}
	i := strings.IndexByte(full, '.')
	if i < 0 {
		return "", full
	}
	rest := full[i+1:]
	if strings.HasPrefix(rest, "(") {
		end := strings.IndexByte(rest, ')')
		if end < 0 || end+1 >= len(rest) || rest[end+1] != '.' {
			return "", rest
		}
		return strings.TrimPrefix(rest[1:end], "*"), rest[end+2:]
	}
	if j := strings.IndexByte(rest, '.'); j >= 0 {
		return rest[:j], rest[j+1:]
	}
	return "", rest
}
