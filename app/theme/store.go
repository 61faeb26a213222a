package theme

import (
	"errors"
	"net/http"
	"sync"

	"github.com/dmitrymomot/koreannum/core/cookie"
)

// StorageKey is the key the preference is persisted under.
const StorageKey = "theme"

// ErrNotStored is returned by stores that hold no value yet.
var ErrNotStored = errors.New("theme: no stored preference")

// Store persists a single raw preference string.
type Store interface {
	Load() (string, error)
	Save(value string) error
}

// CookieStore keeps the preference in the StorageKey cookie of one request/response pair.
type CookieStore struct {
	cookies *cookie.Manager
	w       http.ResponseWriter
	r       *http.Request
}

// NewCookieStore binds a cookie manager to a request and its response writer.
func NewCookieStore(m *cookie.Manager, w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{cookies: m, w: w, r: r}
}

func (s *CookieStore) Load() (string, error) {
	v, err := s.cookies.Get(s.r, StorageKey)
	if errors.Is(err, cookie.ErrCookieNotFound) {
		return "", ErrNotStored
	}
	return v, err
}

func (s *CookieStore) Save(value string) error {
	return s.cookies.Set(s.w, StorageKey, value)
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu    sync.Mutex
	value string
	set   bool
}

// NewMemoryStore returns a store holding no value.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", ErrNotStored
	}
	return s.value, nil
}

func (s *MemoryStore) Save(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value, s.set = value, true
	return nil
}
