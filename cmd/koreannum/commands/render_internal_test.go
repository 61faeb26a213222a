package commands

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/koreannum/app/language"
	"github.com/dmitrymomot/koreannum/app/theme"
)

var errClose = errors.New("disk full")

type closeFailingWriter struct {
	bytes.Buffer
	closed bool
}

func (w *closeFailingWriter) Close() error {
	w.closed = true
	return errClose
}

func TestRenderAndCloseReportsCloseError(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	w := &closeFailingWriter{}
	err := renderAndClose(cmd, w, theme.Dark, language.Polish)
	require.ErrorIs(t, err, errClose)
	assert.True(t, w.closed)
	assert.Contains(t, w.String(), `class="dark"`)
}
