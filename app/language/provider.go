package language

import (
	"errors"
	"sync"
)

var (
	// ErrNoProvider reports a Handle that was not obtained from a Provider.
	ErrNoProvider = errors.New("language: handle used outside of a Provider; obtain it with Provider.Handle")
	// ErrInvalidLanguage reports a value outside All.
	ErrInvalidLanguage = errors.New("language: value is not a supported language")
)

// Provider owns the active language of one page session.
type Provider struct {
	mu        sync.RWMutex
	current   Language
	observers []func(Language)
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithObserver registers fn to run synchronously after every change.
func WithObserver(fn func(Language)) ProviderOption {
	return func(p *Provider) {
		if fn != nil {
			p.observers = append(p.observers, fn)
		}
	}
}

// NewProvider creates a Provider starting at initial.
// It panics with ErrInvalidLanguage if initial is not one of All.
func NewProvider(initial Language, opts ...ProviderOption) *Provider {
	if !initial.Valid() {
		panic(ErrInvalidLanguage)
	}
	p := &Provider{current: initial}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Handle returns the value passed down to components that read or change the language.
func (p *Provider) Handle() Handle {
	return Handle{p: p}
}

func (p *Provider) get() Language {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

func (p *Provider) set(l Language) {
	if !l.Valid() {
		panic(ErrInvalidLanguage)
	}
	p.mu.Lock()
	changed := p.current != l
	p.current = l
	observers := p.observers
	p.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range observers {
		fn(l)
	}
}

// Handle gives access to a Provider's language. Copies share the provider,
// so a Set through one handle is visible through all of them.
// The zero Handle is invalid: Err reports ErrNoProvider and the accessors panic.
type Handle struct {
	p *Provider
}

// Err returns ErrNoProvider for a zero Handle.
func (h Handle) Err() error {
	if h.p == nil {
		return ErrNoProvider
	}
	return nil
}

// Language returns the active language.
func (h Handle) Language() Language {
	if h.p == nil {
		panic(ErrNoProvider)
	}
	return h.p.get()
}

// Set replaces the active language.
// Values outside All panic with ErrInvalidLanguage and leave the state unchanged.
func (h Handle) Set(l Language) {
	if h.p == nil {
		panic(ErrNoProvider)
	}
	h.p.set(l)
}
