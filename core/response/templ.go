package response

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/koreannum/core/handler"
)

// Templ creates an HTML response using a templ component with 200 OK status.
// The component is rendered with the request's context.
func Templ(component templ.Component) handler.Response {
	return TemplWithStatus(component, http.StatusOK)
}

// TemplWithStatus creates an HTML response using a templ component with custom status code.
//
// The component renders into a buffer first, so a failed render leaves the
// response unwritten.
func TemplWithStatus(component templ.Component, status int) handler.Response {
	if component == nil {
		return Error(ErrInternalServerError.WithMessage("nil component"))
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		var buf bytes.Buffer
		if err := component.Render(r.Context(), &buf); err != nil {
			return ErrInternalServerError.WithError(err)
		}

		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, err := w.Write(buf.Bytes())
		return err
	}
}
