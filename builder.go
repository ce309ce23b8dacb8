package xsyslog

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/trickstertwo/xclock"
)

// Defaults applied by NewBuilder.
const (
	DefaultFormat    = "[%C - %S] : %M"
	DefaultCallDepth = 4
)

// Config for constructing a Dispatcher (Factory data structure).
// Code-first and explicit: no envs, no hidden init.
type Config struct {
	Ident        string
	Facility     Facility
	Format       string
	CallDepth    int
	Levels       LevelMap
	LevelMatcher LevelMatcher
	ClassMatcher ClassMatcher
	Transport    Transport
	Resolver     CallerResolver // optional; defaults to the runtime stack resolver
	Clock        xclock.Clock   // optional; defaults to xclock.System()
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{
		Ident:     filepath.Base(os.Args[0]),
		Facility:  FacilityLocal0,
		Format:    DefaultFormat,
		CallDepth: DefaultCallDepth,
		Levels:    DefaultLevelMap(),
	}}
}

func (b *Builder) WithIdent(ident string) *Builder {
	b.cfg.Ident = ident
	return b
}

func (b *Builder) WithFacility(f Facility) *Builder {
	b.cfg.Facility = f
	return b
}

func (b *Builder) WithFormat(tpl string) *Builder {
	b.cfg.Format = tpl
	return b
}

// WithCallDepth sets how many stack frames the resolver skips to find the
// true caller. The default of DefaultCallDepth assumes the standard
// host -> Observer -> Dispatcher chain; adding wrappers around Log requires
// adjusting it.
func (b *Builder) WithCallDepth(depth int) *Builder {
	b.cfg.CallDepth = depth
	return b
}

// WithLevelMap replaces the default translation table. The replacement must
// still cover all six canonical levels.
func (b *Builder) WithLevelMap(m LevelMap) *Builder {
	b.cfg.Levels = m
	return b
}

func (b *Builder) WithLevelMatcher(m LevelMatcher) *Builder {
	b.cfg.LevelMatcher = m
	return b
}

func (b *Builder) WithClassMatcher(m ClassMatcher) *Builder {
	b.cfg.ClassMatcher = m
	return b
}

func (b *Builder) WithTransport(t Transport) *Builder {
	b.cfg.Transport = t
	return b
}

func (b *Builder) WithResolver(r CallerResolver) *Builder {
	b.cfg.Resolver = r
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

// Build validates the configuration and constructs the Dispatcher
// (Factory + Builder). Configuration errors surface here, never from Log.
func (b *Builder) Build() (*Dispatcher, error) {
	cfg := b.cfg
	if cfg.Transport == nil {
		return nil, &ConfigError{Reason: "no transport"}
	}
	if !cfg.Facility.valid() {
		return nil, &ConfigError{Reason: "invalid facility " + strconv.Itoa(int(cfg.Facility))}
	}
	if cfg.CallDepth < 0 {
		return nil, &ConfigError{Reason: "negative call depth"}
	}
	if err := cfg.Levels.validate(); err != nil {
		return nil, err
	}
	return newDispatcher(cfg), nil
}
