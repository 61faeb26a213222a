package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	xlanguage "golang.org/x/text/language"

	"github.com/dmitrymomot/koreannum/app/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	// ErrIncompleteRecord is returned when a language lacks a field.
	ErrIncompleteRecord = errors.New("catalog: incomplete record")
	// ErrUnknownField is returned when a content file has unexpected keys.
	ErrUnknownField = errors.New("catalog: unknown field")
)

// Record is the complete set of display strings for one language.
type Record struct {
	Language language.Language
	Topic    string
	Native   System
	Sino     System
	Labels   Labels
}

// System describes one numeral system panel. List order is display order.
type System struct {
	Title    string
	Numerals []string
	UsedFor  []string
	Examples []string
}

// Labels are the UI strings shared by both panels and the page chrome.
type Labels struct {
	PageTitle         string
	UsedFor           string
	ExamplesTitle     string
	FooterDescription string
	LanguageLabel     string
	LanguageSubmit    string
	SwitchToDark      string
	SwitchToLight     string
}

// Catalog maps every language to its Record. Immutable after Load.
type Catalog struct {
	records map[language.Language]Record
}

var embedded = sync.OnceValues(func() (*Catalog, error) {
	return Load(localeFS)
})

// Embedded returns the catalog compiled into the binary.
func Embedded() (*Catalog, error) {
	return embedded()
}

// Default returns the embedded catalog and panics if it is incomplete,
// which can only be a build defect.
func Default() *Catalog {
	c, err := embedded()
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the record for l. Slices are copies; callers may modify them.
func (c *Catalog) Lookup(l language.Language) Record {
	r, ok := c.records[l]
	if !ok {
		r = c.records[language.Default]
	}
	r.Native = r.Native.clone()
	r.Sino = r.Sino.clone()
	return r
}

func (s System) clone() System {
	s.Numerals = slices.Clone(s.Numerals)
	s.UsedFor = slices.Clone(s.UsedFor)
	s.Examples = slices.Clone(s.Examples)
	return s
}

// Load reads locales/content.<code>.toml and locales/active.<code>.toml for
// every language from fsys. Every language must define every field.
func Load(fsys fs.FS) (*Catalog, error) {
	bundle := i18n.NewBundle(language.Default.Tag())
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, l := range language.All() {
		if _, err := bundle.LoadMessageFileFS(fsys, fmt.Sprintf("locales/active.%s.toml", l)); err != nil {
			return nil, fmt.Errorf("catalog: load labels for %s: %w", l, err)
		}
	}

	c := &Catalog{records: make(map[language.Language]Record, len(language.All()))}
	for _, l := range language.All() {
		content, err := loadContent(fsys, l)
		if err != nil {
			return nil, err
		}

		labels, err := localizeLabels(bundle, l.Tag())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrIncompleteRecord, l, err)
		}

		record := Record{
			Language: l,
			Topic:    content.Topic,
			Native:   content.Native.system(),
			Sino:     content.Sino.system(),
			Labels:   labels,
		}
		if field := missingField(record); field != "" {
			return nil, fmt.Errorf("%w: %s: %s", ErrIncompleteRecord, l, field)
		}
		c.records[l] = record
	}

	return c, nil
}

type contentFile struct {
	Topic  string        `toml:"topic"`
	Native contentSystem `toml:"native"`
	Sino   contentSystem `toml:"sino"`
}

type contentSystem struct {
	Title    string   `toml:"title"`
	Numerals []string `toml:"numerals"`
	UsedFor  []string `toml:"used_for"`
	Examples []string `toml:"examples"`
}

func (s contentSystem) system() System {
	return System(s)
}

func loadContent(fsys fs.FS, l language.Language) (contentFile, error) {
	name := fmt.Sprintf("locales/content.%s.toml", l)

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return contentFile{}, fmt.Errorf("catalog: read %s: %w", name, err)
	}

	var file contentFile
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return contentFile{}, fmt.Errorf("%w: %s: %s", ErrUnknownField, name, strict.String())
		}
		return contentFile{}, fmt.Errorf("catalog: decode %s: %w", name, err)
	}
	return file, nil
}

func localizeLabels(bundle *i18n.Bundle, tag xlanguage.Tag) (Labels, error) {
	loc := i18n.NewLocalizer(bundle, tag.String())
	base, _ := tag.Base()

	var errs []error
	get := func(id string) string {
		msg, tagUsed, err := loc.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: id})
		if err != nil {
			errs = append(errs, fmt.Errorf("label %q: %w", id, err))
			return ""
		}
		if used, _ := tagUsed.Base(); used != base {
			errs = append(errs, fmt.Errorf("label %q: falls back to %s", id, tagUsed))
			return ""
		}
		return msg
	}

	labels := Labels{
		PageTitle:         get("page_title"),
		UsedFor:           get("used_for"),
		ExamplesTitle:     get("examples_title"),
		FooterDescription: get("footer_description"),
		LanguageLabel:     get("language_label"),
		LanguageSubmit:    get("language_submit"),
		SwitchToDark:      get("theme_switch_to_dark"),
		SwitchToLight:     get("theme_switch_to_light"),
	}
	return labels, errors.Join(errs...)
}

// missingField names the first empty field of r, or returns "".
func missingField(r Record) string {
	if r.Topic == "" {
		return "topic"
	}
	systems := []struct {
		name string
		sys  System
	}{{"native", r.Native}, {"sino", r.Sino}}
	for _, entry := range systems {
		name, s := entry.name, entry.sys
		switch {
		case s.Title == "":
			return name + ".title"
		case !filled(s.Numerals):
			return name + ".numerals"
		case !filled(s.UsedFor):
			return name + ".used_for"
		case !filled(s.Examples):
			return name + ".examples"
		}
	}
	return ""
}

func filled(list []string) bool {
	return len(list) > 0 && !slices.Contains(list, "")
}
