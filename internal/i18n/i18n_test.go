package i18n

import (
	"testing"

	"github.com/jpl-au/codefind/internal/filter"
	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"de-AT", "de"},
		{"de", "de"},
		{"es_ES.UTF-8", "es"},
		{"en_GB.UTF-8", "en"},
		{"fr-FR", "en"},
		{"", "en"},
		{"C", "en"},
		{"POSIX", "en"},
		{"!!not a tag", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.in))
		})
	}
}

func TestInitial(t *testing.T) {
	assert.Equal(t, "es", Initial("es", "de_DE.UTF-8"), "saved preference wins")
	assert.Equal(t, "de", Initial("", "de_DE.UTF-8"))
	assert.Equal(t, "de", Initial("xx", "de_DE.UTF-8"), "unsupported saved value is ignored")
	assert.Equal(t, "en", Initial("", ""))
}

func TestValidate(t *testing.T) {
	for _, code := range Supported {
		assert.NoError(t, Validate(code))
	}
	assert.ErrorIs(t, Validate("fr"), ErrUnsupported)
	assert.ErrorIs(t, Validate("DE"), ErrUnsupported)
}

func TestNext(t *testing.T) {
	assert.Equal(t, "de", Next("en"))
	assert.Equal(t, "es", Next("de"))
	assert.Equal(t, "en", Next("es"))
	assert.Equal(t, "en", Next("xx"))
}

func TestLocalizer(t *testing.T) {
	assert.Equal(t, "Copied!", New("en").T(Copied))
	assert.Equal(t, "Kopiert!", New("de").T(Copied))
	assert.Equal(t, "¡Copiado!", New("es").T(Copied))

	l := New("fr")
	assert.Equal(t, "en", l.Lang())
	assert.Equal(t, "Copy Code", l.T(CopyCode))
}

func TestNoResultsIncludesTerm(t *testing.T) {
	for _, code := range Supported {
		msg := New(code).T(NoResults, "xyz")
		assert.Contains(t, msg, `"xyz"`, code)
	}
}

func TestEveryLanguageHasEveryKey(t *testing.T) {
	for _, code := range Supported {
		for key := range tables[Default] {
			_, ok := tables[code][key]
			assert.True(t, ok, "%s missing %s", code, key)
		}
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "Deutsch", Name("de"))
	assert.Equal(t, "xx", Name("xx"))
}

func TestOutcome(t *testing.T) {
	l := New("en")
	assert.Equal(t, "", l.Outcome(filter.StateResults, "x"))
	assert.Equal(t, `No entries found matching "http".`, l.Outcome(filter.StateNoMatch, "  http "))
	assert.Equal(t, `No entries found matching "http client".`, l.Outcome(filter.StateNoMatch, " HTTP Client "),
		"the message echoes the term as searched")
	assert.Equal(t, l.T(NothingAvailable), l.Outcome(filter.StateEmpty, ""))
	assert.Equal(t, l.T(NothingToDisplay), l.Outcome(filter.StateNothingToDisplay, ""))
}
