package web

import (
	"log/slog"
	"net/url"

	"github.com/dmitrymomot/koreannum/app/language"
	"github.com/dmitrymomot/koreannum/app/theme"
	"github.com/dmitrymomot/koreannum/app/view"
	"github.com/dmitrymomot/koreannum/core/handler"
	"github.com/dmitrymomot/koreannum/core/logger"
	"github.com/dmitrymomot/koreannum/core/response"
)

// home renders the page for the stored theme and the lang query value.
// The theme is written back on every render.
func (a *App) home(ctx *Context) handler.Response {
	provider := language.NewProvider(language.Default, language.WithObserver(func(l language.Language) {
		a.logger.DebugContext(ctx, "language selected", logger.Component("web"), logger.Language(l))
	}))
	lang := provider.Handle()
	a.selectLanguage(ctx, lang, ctx.Query(view.LanguageField))

	doc := view.NewDocument()
	pref := a.preference(ctx, doc)
	current := pref.Initial()
	if err := pref.Apply(current); err != nil {
		a.logger.WarnContext(ctx, "theme not persisted",
			logger.Component("web"), logger.Theme(current), logger.Error(err))
	}

	return response.Templ(view.Page(view.PageData{
		Theme:    current,
		Language: lang,
		Document: doc,
		Catalog:  a.catalog,
	}))
}

// toggleTheme flips the stored theme and sends the browser back to the page
// in the language it was showing.
func (a *App) toggleTheme(ctx *Context) handler.Response {
	provider := language.NewProvider(language.Default)
	lang := provider.Handle()
	a.selectLanguage(ctx, lang, ctx.Request().PostFormValue(view.LanguageField))

	pref := a.preference(ctx, view.NewDocument())
	next, err := pref.Toggle(pref.Initial())
	if err != nil {
		a.logger.WarnContext(ctx, "theme not persisted",
			logger.Component("web"), logger.Theme(next), logger.Error(err))
	} else {
		a.logger.DebugContext(ctx, "theme toggled",
			logger.Component("web"), logger.Event("theme.toggled"), logger.Theme(next))
	}

	return response.RedirectSeeOther(pageURL(lang.Language()))
}

func (a *App) preference(ctx *Context, doc *view.Document) *theme.Preference {
	store := theme.NewCookieStore(a.cookie, ctx.ResponseWriter(), ctx.Request())
	return theme.NewPreference(store, doc, theme.WithLogger(a.logger))
}

// selectLanguage sets raw on h when it names a supported language.
// Anything else keeps the current language.
func (a *App) selectLanguage(ctx *Context, h language.Handle, raw string) {
	if raw == "" {
		return
	}
	l, ok := language.Parse(raw)
	if !ok {
		a.logger.DebugContext(ctx, "ignoring unsupported language",
			logger.Component("web"), slog.String("value", raw))
		return
	}
	h.Set(l)
}

func pageURL(l language.Language) string {
	return "/?" + url.Values{view.LanguageField: {l.String()}}.Encode()
}
