// Package language holds the UI language selection.
//
// A Provider owns the active language; components receive a Handle, which is
// the only way to read or change it:
//
//	p := language.NewProvider(language.Default)
//	h := p.Handle()
//	if l, ok := language.Parse(r.URL.Query().Get("lang")); ok {
//		h.Set(l)
//	}
//	view.Page(view.PageData{Language: h, ...})
//
// A zero Handle fails fast: rendering with it returns ErrNoProvider.
package language
