package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/koreannum/cmd/koreannum/commands"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := commands.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		out, err := run(t, "render")
		require.NoError(t, err)
		assert.Contains(t, out, `<html lang="en" class="light">`)
		assert.Contains(t, out, "Korean Number Systems")
	})

	t.Run("polish dark", func(t *testing.T) {
		t.Parallel()

		out, err := run(t, "render", "--lang", "pl", "--theme", "dark")
		require.NoError(t, err)
		assert.Contains(t, out, `<html lang="pl" class="dark">`)
		assert.Contains(t, out, "Koreańskie Systemy Liczbowe")
		assert.Contains(t, out, `data-theme-icon="sun"`)
	})

	t.Run("output file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		out, err := run(t, "render", "--theme", "dark", "-o", path)
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `class="dark"`)
	})

	t.Run("invalid language", func(t *testing.T) {
		t.Parallel()

		_, err := run(t, "render", "--lang", "de")
		require.ErrorIs(t, err, commands.ErrInvalidLanguage)
		assert.Contains(t, err.Error(), "en, pl")
	})

	t.Run("invalid theme", func(t *testing.T) {
		t.Parallel()

		_, err := run(t, "render", "--theme", "blue")
		require.ErrorIs(t, err, commands.ErrInvalidTheme)
		assert.Contains(t, err.Error(), "light, dark")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		t.Parallel()

		_, err := run(t, "render", "extra")
		require.Error(t, err)
	})
}

func TestCommands(t *testing.T) {
	t.Parallel()

	cmd := commands.NewRootCommand()
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "render")
}
