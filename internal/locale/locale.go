// Package locale persists the storefront language preference.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Key is the storage key holding the locale.
const Key = "multidrop-locale"

var ErrUnknownLocale = errors.New("unknown locale")

// Locale is a supported storefront language.
type Locale string

const (
	PortugueseBR Locale = "pt-BR"
	German       Locale = "de"
)

// Default is used when nothing valid is stored.
const Default = PortugueseBR

// All lists the supported locales.
var All = []Locale{PortugueseBR, German}

// Parse matches s against the supported locales, case-insensitively.
func Parse(s string) (Locale, error) {
	s = strings.TrimSpace(s)
	for _, l := range All {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: pt-BR, de)", ErrUnknownLocale, s)
}

// lookup matches a stored value exactly. Stored values are always written
// in canonical form, so anything else is corrupt.
func lookup(s string) (Locale, bool) {
	for _, l := range All {
		if s == string(l) {
			return l, true
		}
	}
	return "", false
}

// Other returns the alternate locale.
func (l Locale) Other() Locale {
	if l == German {
		return PortugueseBR
	}
	return German
}

// DisplayName is the locale's name in its own language.
func (l Locale) DisplayName() string {
	switch l {
	case German:
		return "Deutsch"
	default:
		return "Português"
	}
}

// Storage is the subset of the key/value store the service needs.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Service reads and writes the locale preference.
type Service struct {
	store Storage
	log   zerolog.Logger
}

// NewService creates a locale service over store.
func NewService(store Storage, logger zerolog.Logger) *Service {
	return &Service{store: store, log: logger}
}

// Current returns the stored locale, or Default when the value is missing
// or unrecognized.
func (s *Service) Current() Locale {
	v, ok, err := s.store.Get(Key)
	if err != nil {
		s.log.Info().Err(err).Msg("failed to read stored locale")
		return Default
	}
	if !ok {
		return Default
	}
	l, valid := lookup(v)
	if !valid {
		s.log.Info().Str("value", v).Msg("ignoring corrupt stored locale")
		return Default
	}
	return l
}

// Set persists l.
func (s *Service) Set(l Locale) error {
	l, err := Parse(string(l))
	if err != nil {
		return fmt.Errorf("locale: %w", err)
	}
	if err := s.store.Set(Key, string(l)); err != nil {
		return fmt.Errorf("locale: %w", err)
	}
	s.log.Debug().Str("locale", string(l)).Msg("locale changed")
	return nil
}

// Toggle switches to the other locale and returns it.
func (s *Service) Toggle() (Locale, error) {
	next := s.Current().Other()
	if err := s.Set(next); err != nil {
		return "", err
	}
	return next, nil
}
