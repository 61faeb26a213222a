// Package catalog holds the per-language page content.
//
// Content tables (topic, numeral rows, "used for" lists, examples) live in
// locales/content.<code>.toml and are decoded strictly with go-toml. UI
// labels live in go-i18n message files locales/active.<code>.toml. Both are
// embedded and validated together: a language missing any field, or a label
// only available through fallback to another language, fails Load.
//
//	rec := catalog.Default().Lookup(language.Polish)
//	fmt.Println(rec.Topic) // Koreańskie Systemy Liczbowe
package catalog
