// Package view renders the Korean numbers page as templ components.
//
// The tree is fixed: a top bar with the theme toggle and the language
// selector, the topic header, the native and Sino panels, and the footer.
// Every render is recomputed from the theme, the language handle and the
// document classes; nothing is cached between requests.
//
//	doc := view.NewDocument()
//	pref := theme.NewPreference(store, doc)
//	_ = pref.Apply(pref.Initial())
//	err := view.Page(view.PageData{
//		Theme:    pref.Initial(),
//		Language: provider.Handle(),
//		Document: doc,
//	}).Render(ctx, w)
package view
