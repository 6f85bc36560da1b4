// Package theme maintains the user's color theme: the dark/light mode, the
// primary accent and the four role colors. It derives a consistent set of
// style variables from them, mirrors every change into durable storage and
// exposes the result as a declarative Projection.
//
// The Engine is the only writer. Consumers read through Reader.
package theme

import (
	"fmt"
	"sync"

	"multidrop/internal/color"

	"github.com/rs/zerolog"
)

// Storage is the durable key/value store the engine mirrors into.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	SetMany(entries map[string]string) error
}

// Reader is read-only access to the current theme.
type Reader interface {
	State() State
	Projection() Projection
}

// Change actions.
const (
	ActionSetPrimary = "set-primary"
	ActionSetColor   = "set-color"
	ActionSetMode    = "set-mode"
	ActionReset      = "reset"
)

// Change describes one applied mutation.
type Change struct {
	Action   string
	Key      string
	Value    string
	Previous string
}

// Options tune derivation and observation.
type Options struct {
	// LegacyContrast derives the secondary and button foregrounds with the
	// |l-90| lightness approximation instead of ContrastingColor.
	LegacyContrast bool

	// OnChange, if set, is called after every successful mutation, outside
	// the engine lock.
	OnChange func(Change)
}

// Engine owns the theme state.
type Engine struct {
	mu    sync.RWMutex
	store Storage
	log   zerolog.Logger
	opts  Options

	state State
	proj  Projection
}

var _ Reader = (*Engine)(nil)

// New returns an engine holding the built-in defaults. Nothing is read
// from or written to store.
func New(store Storage, logger zerolog.Logger, opts Options) *Engine {
	e := &Engine{
		store: store,
		log:   logger,
		opts:  opts,
		state: DefaultState(),
	}
	e.proj = build(e.state, opts.LegacyContrast)
	return e
}

// Open returns an engine restored from store.
func Open(store Storage, logger zerolog.Logger, opts Options) *Engine {
	e := New(store, logger, opts)
	e.Restore()
	return e
}

// State returns a copy of the current theme.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Projection returns a copy of the current style mapping.
func (e *Engine) Projection() Projection {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.proj.clone()
}

// Restore reloads the theme from storage. Each key that is missing,
// unreadable or malformed falls back to its own default independently.
func (e *Engine) Restore() {
	s := DefaultState()

	if v, ok := e.read(KeyThemeMode); ok {
		if m, err := ParseMode(v); err == nil {
			s.Mode = m
		} else {
			e.log.Info().Str("key", KeyThemeMode).Str("value", v).Msg("ignoring corrupt stored mode")
		}
	}

	s.Primary = e.readColor(KeyPrimaryColor, DefaultPrimary)
	for _, r := range Roles {
		s.Colors = s.Colors.With(r, e.readColor(r.Key(), DefaultColors.Get(r)))
	}

	e.mu.Lock()
	e.state = s
	e.proj = build(s, e.opts.LegacyContrast)
	e.mu.Unlock()

	e.log.Debug().Str("mode", string(s.Mode)).Str("primary", s.Primary).Msg("theme restored")
}

// Persist writes the full theme to storage in one batch.
func (e *Engine) Persist() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.store.SetMany(e.state.Entries()); err != nil {
		return fmt.Errorf("theme: persist failed: %w", err)
	}
	return nil
}

// SetPrimaryColor makes hex the primary accent and re-derives the
// foreground, secondary tone and gradient from it.
func (e *Engine) SetPrimaryColor(hex string) error {
	hex, err := color.Normalize(hex)
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	e.mu.Lock()
	prev := e.state.Primary
	next := e.state
	next.Primary = hex

	proj := e.proj.clone()
	vars, gradient := primaryVars(hex)
	proj.apply(vars)
	proj.Gradient = gradient

	err = e.commit(next, proj, map[string]string{KeyPrimaryColor: hex})
	e.mu.Unlock()
	if err != nil {
		return err
	}

	e.log.Debug().Str("primary", hex).Str("previous", prev).Msg("primary color changed")
	e.notify(Change{Action: ActionSetPrimary, Key: KeyPrimaryColor, Value: hex, Previous: prev})
	return nil
}

// SetRoleColor assigns hex to role and re-derives only the variables that
// role owns.
func (e *Engine) SetRoleColor(role Role, hex string) error {
	role, err := ParseRole(string(role))
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	hex, err = color.Normalize(hex)
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	e.mu.Lock()
	prev := e.state.Colors.Get(role)
	next := e.state
	next.Colors = next.Colors.With(role, hex)

	proj := e.proj.clone()
	proj.apply(roleVars(role, hex, e.opts.LegacyContrast))

	err = e.commit(next, proj, map[string]string{role.Key(): hex})
	e.mu.Unlock()
	if err != nil {
		return err
	}

	e.log.Debug().Str("role", string(role)).Str("color", hex).Msg("role color changed")
	e.notify(Change{Action: ActionSetColor, Key: role.Key(), Value: hex, Previous: prev})
	return nil
}

// ToggleMode flips between dark and light and returns the new mode.
func (e *Engine) ToggleMode() (Mode, error) {
	e.mu.Lock()
	next := e.state.Mode.Toggle()
	change, err := e.setModeLocked(next)
	e.mu.Unlock()
	if err != nil {
		return "", err
	}

	e.notify(change)
	return next, nil
}

// SetMode switches to m, rewriting the base palette variables.
func (e *Engine) SetMode(m Mode) error {
	m, err := ParseMode(string(m))
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	e.mu.Lock()
	change, err := e.setModeLocked(m)
	e.mu.Unlock()
	if err != nil {
		return err
	}

	e.notify(change)
	return nil
}

func (e *Engine) setModeLocked(m Mode) (Change, error) {
	prev := e.state.Mode
	next := e.state
	next.Mode = m

	proj := e.proj.clone()
	proj.apply(Palette(m))
	proj.Marker = m.Marker()

	if err := e.commit(next, proj, map[string]string{KeyThemeMode: string(m)}); err != nil {
		return Change{}, err
	}

	e.log.Debug().Str("mode", string(m)).Str("previous", string(prev)).Msg("theme mode changed")
	return Change{Action: ActionSetMode, Key: KeyThemeMode, Value: string(m), Previous: string(prev)}, nil
}

// Reset restores and persists the built-in defaults.
func (e *Engine) Reset() error {
	next := DefaultState()

	e.mu.Lock()
	err := e.commit(next, build(next, e.opts.LegacyContrast), next.Entries())
	e.mu.Unlock()
	if err != nil {
		return err
	}

	e.log.Debug().Msg("theme reset to defaults")
	e.notify(Change{Action: ActionReset})
	return nil
}

// commit persists entries and then swaps in next and proj. The caller
// holds e.mu. On a storage error nothing changes.
func (e *Engine) commit(next State, proj Projection, entries map[string]string) error {
	if err := e.store.SetMany(entries); err != nil {
		return fmt.Errorf("theme: persist failed: %w", err)
	}
	e.state = next
	e.proj = proj
	return nil
}

func (e *Engine) notify(c Change) {
	if e.opts.OnChange != nil {
		e.opts.OnChange(c)
	}
}

func (e *Engine) read(key string) (string, bool) {
	v, ok, err := e.store.Get(key)
	if err != nil {
		e.log.Info().Err(err).Str("key", key).Msg("failed to read stored theme value")
		return "", false
	}
	return v, ok
}

func (e *Engine) readColor(key, fallback string) string {
	v, ok := e.read(key)
	if !ok {
		return fallback
	}
	hex, err := color.Normalize(v)
	if err != nil {
		e.log.Info().Str("key", key).Str("value", v).Msg("ignoring corrupt stored color")
		return fallback
	}
	return hex
}

// Derive returns the projection s would have under opts without touching
// any engine or store. It is used to preview a theme before applying it.
func Derive(s State, opts Options) Projection {
	return build(s, opts.LegacyContrast)
}

// build derives the full projection of s: base palette, then the primary
// derivation, then each role in Roles order.
func build(s State, legacy bool) Projection {
	p := Projection{Marker: s.Mode.Marker()}
	p.apply(Palette(s.Mode))

	vars, gradient := primaryVars(s.Primary)
	p.apply(vars)
	p.Gradient = gradient

	for _, r := range Roles {
		p.apply(roleVars(r, s.Colors.Get(r), legacy))
	}
	return p
}
