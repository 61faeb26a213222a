package router_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/koreannum/core/handler"
	"github.com/dmitrymomot/koreannum/core/router"
)

func text(body string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		_, err := w.Write([]byte(body))
		return err
	}
}

func TestRouterDispatch(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/{$}", func(ctx *router.Context) handler.Response { return text("home") })
	r.Post("/theme", func(ctx *router.Context) handler.Response { return text("toggled") })
	r.Get("/static/{file}", func(ctx *router.Context) handler.Response { return text(ctx.Param("file")) })

	tests := []struct {
		name   string
		method string
		path   string
		code   int
		body   string
	}{
		{"root", http.MethodGet, "/", http.StatusOK, "home"},
		{"post route", http.MethodPost, "/theme", http.StatusOK, "toggled"},
		{"path param", http.MethodGet, "/static/app.css", http.StatusOK, "app.css"},
		{"unknown path", http.MethodGet, "/missing", http.StatusNotFound, "Not Found\n"},
		{"wrong method", http.MethodGet, "/theme", http.StatusMethodNotAllowed, "Method Not Allowed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestRouterAllowHeader(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Post("/theme", func(ctx *router.Context) handler.Response { return text("ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/theme", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "POST", w.Header().Get("Allow"))
}

func TestRouterMiddleware(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) handler.Middleware[*router.Context] {
		return func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
			return func(ctx *router.Context) handler.Response {
				order = append(order, name)
				return next(ctx)
			}
		}
	}

	r := router.New(router.WithMiddleware(mw("option")))
	r.Get("/{$}", func(ctx *router.Context) handler.Response {
		order = append(order, "handler")
		return text("ok")
	})
	r.Use(mw("use"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"option", "use", "handler"}, order)
}

func TestRouterErrorHandling(t *testing.T) {
	t.Parallel()

	var handled error
	r := router.New(router.WithErrorHandler[*router.Context](func(ctx *router.Context, err error) {
		handled = err
		ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
	}))

	r.Get("/fail", func(ctx *router.Context) handler.Response {
		return func(http.ResponseWriter, *http.Request) error { return errors.New("boom") }
	})
	r.Get("/panic", func(ctx *router.Context) handler.Response {
		panic("kaboom")
	})

	t.Run("response error", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.EqualError(t, handled, "boom")
	})

	t.Run("panic recovered", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
		assert.Equal(t, http.StatusTeapot, w.Code)

		var pe router.PanicError
		require.ErrorAs(t, handled, &pe)
		assert.Equal(t, "kaboom", pe.Value())
		assert.NotEmpty(t, pe.Stack())
	})
}

func TestRouterRoutes(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/{$}", func(ctx *router.Context) handler.Response { return nil })
	r.Post("/theme", func(ctx *router.Context) handler.Response { return nil })

	assert.Equal(t, []router.Route{
		{Method: http.MethodGet, Pattern: "/{$}"},
		{Method: http.MethodPost, Pattern: "/theme"},
	}, r.Routes())
}

func TestRouterNilResponse(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/{$}", func(ctx *router.Context) handler.Response { return nil })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRouterInvalidPattern(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	assert.PanicsWithValue(t, router.ErrInvalidPattern, func() {
		r.Get("theme", func(ctx *router.Context) handler.Response { return nil })
	})
}
