package language_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	xlanguage "golang.org/x/text/language"

	"github.com/dmitrymomot/koreannum/app/language"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want language.Language
		ok   bool
	}{
		{"en", language.English, true},
		{"pl", language.Polish, true},
		{"pl-PL", language.Polish, true},
		{"en-GB", language.English, true},
		{" pl ", language.Polish, true},
		{"", language.English, false},
		{"de", language.English, false},
		{"xx-not-a-tag!", language.English, false},
	}
	for _, tt := range tests {
		got, ok := language.Parse(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestLanguageForms(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []language.Language{language.English, language.Polish}, language.All())
	assert.Equal(t, "en", language.English.String())
	assert.Equal(t, "pl", language.Polish.String())
	assert.Equal(t, xlanguage.Polish, language.Polish.Tag())
	assert.Equal(t, "English", language.English.NativeName())
	assert.Equal(t, "polski", language.Polish.NativeName())
}

func TestProvider(t *testing.T) {
	t.Parallel()

	t.Run("defaults to initial", func(t *testing.T) {
		t.Parallel()
		h := language.NewProvider(language.Default).Handle()
		assert.Equal(t, language.English, h.Language())
		assert.NoError(t, h.Err())
	})

	t.Run("set is visible through every handle", func(t *testing.T) {
		t.Parallel()
		p := language.NewProvider(language.English)
		a, b := p.Handle(), p.Handle()

		a.Set(language.Polish)
		assert.Equal(t, language.Polish, b.Language())
		assert.Equal(t, language.Polish, p.Handle().Language())
	})

	t.Run("observers see changes only", func(t *testing.T) {
		t.Parallel()
		var seen []language.Language
		p := language.NewProvider(language.English, language.WithObserver(func(l language.Language) {
			seen = append(seen, l)
		}))
		h := p.Handle()

		h.Set(language.English)
		h.Set(language.Polish)
		h.Set(language.Polish)
		h.Set(language.English)

		assert.Equal(t, []language.Language{language.Polish, language.English}, seen)
	})
}

func TestZeroHandleFailsFast(t *testing.T) {
	t.Parallel()

	var h language.Handle
	assert.ErrorIs(t, h.Err(), language.ErrNoProvider)
	assert.PanicsWithValue(t, language.ErrNoProvider, func() { _ = h.Language() })
	assert.PanicsWithValue(t, language.ErrNoProvider, func() { h.Set(language.Polish) })
}

func TestInvalidLanguageRejected(t *testing.T) {
	t.Parallel()

	assert.True(t, language.English.Valid())
	assert.True(t, language.Polish.Valid())
	assert.False(t, language.Language(7).Valid())

	assert.PanicsWithValue(t, language.ErrInvalidLanguage, func() {
		language.NewProvider(language.Language(7))
	})

	h := language.NewProvider(language.Polish).Handle()
	assert.PanicsWithValue(t, language.ErrInvalidLanguage, func() { h.Set(language.Language(7)) })
	assert.Equal(t, language.Polish, h.Language())
	assert.True(t, h.Language().Valid())
}
