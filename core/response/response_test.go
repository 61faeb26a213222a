package response_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/koreannum/core/response"
)

func TestTempl(t *testing.T) {
	t.Parallel()

	t.Run("renders component", func(t *testing.T) {
		t.Parallel()

		component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<p>hi</p>")
			return err
		})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, response.Templ(component)(w, r))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "<p>hi</p>", w.Body.String())
	})

	t.Run("failing component writes nothing", func(t *testing.T) {
		t.Parallel()

		component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, _ = io.WriteString(w, "<p>partial")
			return errors.New("boom")
		})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		err := response.Templ(component)(w, r)

		require.Error(t, err)
		assert.Empty(t, w.Body.String())
		assert.Equal(t, http.StatusInternalServerError, response.AsHTTPError(err).Status)
	})

	t.Run("custom status", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, response.TemplWithStatus(templ.ComponentFunc(func(context.Context, io.Writer) error {
			return nil
		}), http.StatusNotFound)(w, r))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/theme", nil)
	require.NoError(t, response.RedirectSeeOther("/?lang=pl")(w, r))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?lang=pl", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	require.NoError(t, response.RedirectWithStatus("/", 200)(w, r))
	assert.Equal(t, http.StatusFound, w.Code)
}

type statusErr int

func (e statusErr) Error() string   { return fmt.Sprintf("status %d", int(e)) }
func (e statusErr) StatusCode() int { return int(e) }

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, response.ErrNotFound, response.AsHTTPError(response.ErrNotFound))

	wrapped := fmt.Errorf("lookup: %w", statusErr(http.StatusMethodNotAllowed))
	got := response.AsHTTPError(wrapped)
	assert.Equal(t, http.StatusMethodNotAllowed, got.Status)
	assert.Equal(t, "lookup: status 405", got.Details["cause"])

	got = response.AsHTTPError(errors.New("plain"))
	assert.Equal(t, http.StatusInternalServerError, got.Status)

	got = response.AsHTTPError(statusErr(http.StatusTeapot))
	assert.Equal(t, http.StatusInternalServerError, got.Status)
}

func TestWithErrorDoesNotMutateBase(t *testing.T) {
	t.Parallel()

	_ = response.ErrBadRequest.WithError(errors.New("cause"))
	assert.Nil(t, response.ErrBadRequest.Details)
}

func TestString(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, response.String("ALIVE")(w, r))
	assert.Equal(t, "ALIVE", w.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
}
