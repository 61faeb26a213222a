package theme

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/koreannum/core/logger"
)

// Marker receives the document-level theme class.
type Marker interface {
	RemoveClass(class string)
	AddClass(class string)
}

// Preference reads and applies the persisted theme.
type Preference struct {
	store  Store
	marker Marker
	log    *slog.Logger
}

// Option configures a Preference.
type Option func(*Preference)

// WithLogger sets the logger for degraded reads and failed writes.
func WithLogger(l *slog.Logger) Option {
	return func(p *Preference) {
		if l != nil {
			p.log = l
		}
	}
}

// NewPreference creates a Preference over store applying classes to marker.
func NewPreference(store Store, marker Marker, opts ...Option) *Preference {
	p := &Preference{
		store:  store,
		marker: marker,
		log:    logger.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Initial returns the stored theme, or Default when nothing valid is stored.
// Read failures never surface.
func (p *Preference) Initial() Theme {
	raw, err := p.store.Load()
	if err != nil {
		p.log.Debug("theme preference unavailable", logger.Component("theme"), logger.Error(err))
		return Default
	}
	t, ok := Parse(raw)
	if !ok {
		p.log.Debug("ignoring invalid theme preference", logger.Component("theme"), slog.String("value", raw))
		return Default
	}
	return t
}

// Apply swaps the document class to t and persists t.
// The marker is updated even when persisting fails.
func (p *Preference) Apply(t Theme) error {
	p.marker.RemoveClass(t.Toggle().String())
	p.marker.AddClass(t.String())

	if err := p.store.Save(t.String()); err != nil {
		return fmt.Errorf("theme: persist %s: %w", t, err)
	}
	return nil
}

// Toggle applies the opposite of current and returns it.
func (p *Preference) Toggle(current Theme) (Theme, error) {
	next := current.Toggle()
	return next, p.Apply(next)
}
