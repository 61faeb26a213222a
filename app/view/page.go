package view

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/koreannum/app/catalog"
	"github.com/dmitrymomot/koreannum/app/language"
	"github.com/dmitrymomot/koreannum/app/theme"
)

// PageData is everything a page render depends on.
type PageData struct {
	Theme    theme.Theme
	Language language.Handle
	Document *Document
	Catalog  *catalog.Catalog
}

// Page renders the complete document: top bar, header, native and Sino
// panels, footer. Output is a pure function of the theme, the active language
// and the document classes.
func Page(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := data.Language.Err(); err != nil {
			return err
		}
		cat := data.Catalog
		if cat == nil {
			cat = catalog.Default()
		}
		doc := data.Document
		if doc == nil {
			doc = NewDocument()
			doc.AddClass(data.Theme.String())
		}

		lang := data.Language.Language()
		rec := cat.Lookup(lang)

		hw := &htmlWriter{w: w}
		hw.raw(`<!DOCTYPE html>`)
		hw.escapedf(`<html lang="%s" class="%s">`, lang.Tag().String(), doc.Class())
		hw.raw(`<head><meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.escapedf(`<title>%s</title>`, rec.Labels.PageTitle)
		hw.escapedf(`<link rel="stylesheet" href="%s">`, StylesheetPath)
		hw.raw(`</head><body><nav class="topbar">`)
		if hw.err != nil {
			return hw.err
		}

		children := []templ.Component{
			ThemeToggle(data.Theme, lang, rec.Labels),
			LanguageSelector(data.Language, rec.Labels),
		}
		if err := renderAll(ctx, w, children...); err != nil {
			return err
		}
		hw.raw(`</nav>`)
		if hw.err != nil {
			return hw.err
		}

		if err := Header(rec).Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`<main>`)
		if hw.err != nil {
			return hw.err
		}
		if err := renderAll(ctx, w,
			Panel("native", rec.Native, rec.Labels),
			Panel("sino", rec.Sino, rec.Labels),
		); err != nil {
			return err
		}
		hw.raw(`</main>`)
		if hw.err != nil {
			return hw.err
		}
		if err := Footer(rec.Labels).Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`</body></html>`)
		return hw.err
	})
}

func renderAll(ctx context.Context, w io.Writer, components ...templ.Component) error {
	for _, c := range components {
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}
