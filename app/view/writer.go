package view

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter keeps the first write error so markup can be emitted without
// checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

// escapedf formats with every argument HTML-escaped. The format itself is written as is.
func (hw *htmlWriter) escapedf(format string, args ...string) {
	escaped := make([]any, len(args))
	for i, a := range args {
		escaped[i] = templ.EscapeString(a)
	}
	hw.raw(fmt.Sprintf(format, escaped...))
}
