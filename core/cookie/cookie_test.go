package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/koreannum/core/cookie"
)

func roundTrip(w *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestManager_BasicOperations(t *testing.T) {
	t.Parallel()

	t.Run("set and get cookie", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, "theme", "dark"))

		value, err := m.Get(roundTrip(w), "theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", value)
	})

	t.Run("cookie not found", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		_, err := m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "theme")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		assert.ErrorIs(t, m.Set(httptest.NewRecorder(), "", "x"), cookie.ErrEmptyName)
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		err := m.Set(httptest.NewRecorder(), "big", strings.Repeat("a", cookie.MaxCookieSize))

		var tooLarge cookie.ErrCookieTooLarge
		require.ErrorAs(t, err, &tooLarge)
		assert.Equal(t, "big", tooLarge.Name)
		assert.Equal(t, cookie.MaxCookieSize, tooLarge.Max)
	})
}

func TestManager_Attributes(t *testing.T) {
	t.Parallel()

	t.Run("secure defaults", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, "theme", "light"))

		c := w.Result().Cookies()[0]
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("per-call override", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithMaxAge(60))
		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, "theme", "light", cookie.WithMaxAge(120), cookie.WithPath("/app")))

		c := w.Result().Cookies()[0]
		assert.Equal(t, 120, c.MaxAge)
		assert.Equal(t, "/app", c.Path)
	})

	t.Run("from config", func(t *testing.T) {
		t.Parallel()

		cfg := cookie.DefaultConfig()
		cfg.Secure = true
		cfg.Domain = "example.com"
		m := cookie.NewFromConfig(cfg)

		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, "theme", "dark"))

		c := w.Result().Cookies()[0]
		assert.True(t, c.Secure)
		assert.Equal(t, "example.com", c.Domain)
		assert.Equal(t, 365*24*60*60, c.MaxAge)
	})

	t.Run("config max size", func(t *testing.T) {
		t.Parallel()

		cfg := cookie.DefaultConfig()
		cfg.MaxSize = 32
		m := cookie.NewFromConfig(cfg)

		err := m.Set(httptest.NewRecorder(), "theme", strings.Repeat("x", 40))
		var tooLarge cookie.ErrCookieTooLarge
		assert.ErrorAs(t, err, &tooLarge)
	})
}
