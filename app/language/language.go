package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language is a supported UI language. The zero value is English.
type Language uint8

const (
	English Language = iota
	Polish
)

// Default is the language every session starts with.
const Default = English

var tags = [...]language.Tag{
	English: language.English,
	Polish:  language.Polish,
}

// String returns the short code: "en" or "pl".
func (l Language) String() string {
	if l == Polish {
		return "pl"
	}
	return "en"
}

// Tag returns the BCP 47 tag.
func (l Language) Tag() language.Tag {
	if int(l) < len(tags) {
		return tags[l]
	}
	return tags[Default]
}

// NativeName returns the language's name in itself, e.g. "polski".
func (l Language) NativeName() string {
	return display.Self.Name(l.Tag())
}

// Valid reports whether l is one of All.
func (l Language) Valid() bool {
	return l == English || l == Polish
}

// All returns the selectable languages in display order.
func All() []Language {
	return []Language{English, Polish}
}

// Parse accepts "en", "pl" and regional variants such as "pl-PL".
func Parse(s string) (Language, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default, false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Default, false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return Default, false
	}
	for _, l := range All() {
		if lb, _ := l.Tag().Base(); lb == base {
			return l, true
		}
	}
	return Default, false
}
