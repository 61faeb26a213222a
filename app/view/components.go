package view

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/koreannum/app/catalog"
	"github.com/dmitrymomot/koreannum/app/language"
	"github.com/dmitrymomot/koreannum/app/theme"
)

// Form targets and field names shared with the HTTP handlers.
const (
	ThemeAction    = "/theme"
	LanguageAction = "/"
	LanguageField  = "lang"
)

const (
	moonIcon = `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/></svg>`
	sunIcon  = `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><circle cx="12" cy="12" r="5"/><path d="M12 1v2M12 21v2M4.22 4.22l1.42 1.42M18.36 18.36l1.42 1.42M1 12h2M21 12h2M4.22 19.78l1.42-1.42M18.36 5.64l1.42-1.42"/></svg>`
)

// ThemeIcon names the glyph shown for t: a moon while light, a sun while dark.
func ThemeIcon(t theme.Theme) string {
	if t == theme.Dark {
		return "sun"
	}
	return "moon"
}

// ThemeToggle renders the single button that switches to the other theme.
// The form posts the current language so the redirect keeps it.
func ThemeToggle(t theme.Theme, lang language.Language, labels catalog.Labels) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		label := labels.SwitchToDark
		icon := moonIcon
		if t == theme.Dark {
			label = labels.SwitchToLight
			icon = sunIcon
		}

		hw := &htmlWriter{w: w}
		hw.escapedf(`<form method="post" action="%s" class="theme-form">`, ThemeAction)
		hw.escapedf(`<input type="hidden" name="%s" value="%s">`, LanguageField, lang.String())
		hw.escapedf(`<button type="submit" class="theme-toggle" data-theme-icon="%s" aria-label="%s" title="%s">`,
			ThemeIcon(t), label, label)
		hw.raw(icon)
		hw.raw(`</button></form>`)
		return hw.err
	})
}

// LanguageSelector renders a form choosing between all supported languages.
// A zero handle fails Render with language.ErrNoProvider.
func LanguageSelector(h language.Handle, labels catalog.Labels) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := h.Err(); err != nil {
			return err
		}
		current := h.Language()

		hw := &htmlWriter{w: w}
		hw.escapedf(`<form method="get" action="%s" class="language-form">`, LanguageAction)
		hw.escapedf(`<label for="language-select">%s</label>`, labels.LanguageLabel)
		hw.escapedf(`<select id="language-select" name="%s" onchange="this.form.submit()">`, LanguageField)
		for _, l := range language.All() {
			selected := ""
			if l == current {
				selected = " selected"
			}
			hw.escapedf(`<option value="%s"`, l.String())
			hw.raw(selected)
			hw.escapedf(`>%s</option>`, l.NativeName())
		}
		hw.raw(`</select>`)
		hw.escapedf(`<button type="submit">%s</button>`, labels.LanguageSubmit)
		hw.raw(`</form>`)
		return hw.err
	})
}

// Header renders the topic title.
func Header(rec catalog.Record) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.escapedf(`<header><h1>%s</h1></header>`, rec.Topic)
		return hw.err
	})
}

// Panel renders one numeral system: title, numeral row, uses and examples.
func Panel(id string, sys catalog.System, labels catalog.Labels) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.escapedf(`<section class="panel" id="%s">`, id)
		hw.escapedf(`<h2>%s</h2>`, sys.Title)
		hw.escapedf(`<p class="numerals" lang="ko">%s</p>`, strings.Join(sys.Numerals, " "))

		hw.escapedf(`<h3>%s</h3><ul class="used-for">`, labels.UsedFor)
		for _, item := range sys.UsedFor {
			hw.escapedf(`<li>%s</li>`, item)
		}
		hw.raw(`</ul>`)

		hw.escapedf(`<h3>%s</h3><ol class="examples">`, labels.ExamplesTitle)
		for _, item := range sys.Examples {
			hw.escapedf(`<li>%s</li>`, item)
		}
		hw.raw(`</ol></section>`)
		return hw.err
	})
}

// Footer renders the educational disclaimer.
func Footer(labels catalog.Labels) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.escapedf(`<footer><p>%s</p></footer>`, labels.FooterDescription)
		return hw.err
	})
}
