package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/koreannum/app/catalog"
	"github.com/dmitrymomot/koreannum/app/language"
	"github.com/dmitrymomot/koreannum/app/theme"
	"github.com/dmitrymomot/koreannum/app/view"
)

var (
	ErrInvalidLanguage = errors.New("invalid language")
	ErrInvalidTheme    = errors.New("invalid theme")
)

func renderCmd() *cobra.Command {
	var (
		langFlag  string
		themeFlag string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the page for one theme and language as static HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, ok := language.Parse(langFlag)
			if !ok {
				return fmt.Errorf("%w %q: allowed values are %s", ErrInvalidLanguage, langFlag, allowedLanguages())
			}
			th, ok := theme.Parse(themeFlag)
			if !ok {
				return fmt.Errorf("%w %q: allowed values are %s", ErrInvalidTheme, themeFlag, allowedThemes())
			}

			if output == "" || output == "-" {
				return renderPage(cmd, cmd.OutOrStdout(), th, lang)
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			return renderAndClose(cmd, f, th, lang)
		},
	}

	cmd.Flags().StringVar(&langFlag, "lang", language.Default.String(), "page language ("+allowedLanguages()+")")
	cmd.Flags().StringVar(&themeFlag, "theme", theme.Default.String(), "page theme ("+allowedThemes()+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// renderAndClose renders into wc and reports the close error when rendering succeeded.
func renderAndClose(cmd *cobra.Command, wc io.WriteCloser, th theme.Theme, lang language.Language) error {
	if err := renderPage(cmd, wc, th, lang); err != nil {
		_ = wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func renderPage(cmd *cobra.Command, w io.Writer, th theme.Theme, lang language.Language) error {
	c, err := catalog.Embedded()
	if err != nil {
		return err
	}

	doc := view.NewDocument()
	pref := theme.NewPreference(theme.NewMemoryStore(), doc)
	if err := pref.Apply(th); err != nil {
		return err
	}

	provider := language.NewProvider(lang)
	return view.Page(view.PageData{
		Theme:    th,
		Language: provider.Handle(),
		Document: doc,
		Catalog:  c,
	}).Render(cmd.Context(), w)
}

func allowedLanguages() string {
	codes := make([]string, 0, len(language.All()))
	for _, l := range language.All() {
		codes = append(codes, l.String())
	}
	return strings.Join(codes, ", ")
}

func allowedThemes() string {
	names := make([]string, 0, len(theme.All()))
	for _, t := range theme.All() {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}
