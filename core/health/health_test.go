package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/koreannum/core/handler"
	"github.com/dmitrymomot/koreannum/core/health"
	"github.com/dmitrymomot/koreannum/core/logger"
	"github.com/dmitrymomot/koreannum/core/response"
	"github.com/dmitrymomot/koreannum/core/router"
)

func serve(t *testing.T, h handler.HandlerFunc[*router.Context]) *httptest.ResponseRecorder {
	t.Helper()

	r := router.New(router.WithErrorHandler[*router.Context](response.ErrorHandler[*router.Context]))
	r.Get("/probe", h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	return w
}

func TestLiveness(t *testing.T) {
	t.Parallel()

	w := serve(t, health.Liveness[*router.Context])
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", w.Body.String())
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	failing := func(context.Context) error { return errors.New("catalog missing") }

	t.Run("all checks pass", func(t *testing.T) {
		t.Parallel()

		w := serve(t, health.Readiness[*router.Context](logger.NewNop(), ok, ok))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "READY", w.Body.String())
	})

	t.Run("failing check", func(t *testing.T) {
		t.Parallel()

		w := serve(t, health.Readiness[*router.Context](logger.NewNop(), ok, failing))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
