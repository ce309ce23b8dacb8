package xsyslog

import "github.com/trickstertwo/xlog"

// Matchers are host-evaluated predicates: the host framework consults
// Dispatcher.Accepts before delivering an event, and Log does not
// re-filter. A nil matcher accepts everything.

// LevelMatcher decides whether a dispatcher wants events at a given level.
type LevelMatcher func(level xlog.Level) bool

// ClassMatcher decides whether a dispatcher wants events from a given
// originating class.
type ClassMatcher func(class string) bool

// MatchMinLevel accepts levels at or above min.
func MatchMinLevel(min xlog.Level) LevelMatcher {
	return func(l xlog.Level) bool { return l >= min }
}

// MatchClasses accepts exactly the named classes.
func MatchClasses(names ...string) ClassMatcher {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(class string) bool {
		_, ok := set[class]
		return ok
	}
}
