// Package i18n holds the user-facing message tables and language selection.
//
// Messages are registered in an x/text catalog so lookups go through a
// message.Printer and pick up placeholder formatting for free. Only the
// languages listed in Supported are offered; anything else falls back to
// English.
package i18n

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/jpl-au/codefind/internal/filter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// ErrUnsupported is returned when a language code is not in Supported.
var ErrUnsupported = errors.New("unsupported language")

// Default is the fallback language.
const Default = "en"

// Message keys.
const (
	Title             = "title"
	Subtitle          = "subtitle"
	SearchPlaceholder = "searchPlaceholder"
	NoResults         = "noResultsFound"
	ErrorLoading      = "errorLoading"
	NothingAvailable  = "noEntriesAvailable"
	NothingToDisplay  = "noEntriesToDisplay"
	Loading           = "loading"
	CopyCode          = "copyCode"
	Copied            = "copied"
	CopyFailed        = "copyFailed"
	LanguageLabel     = "language"
	HelpKeys          = "helpKeys"
)

// Supported lists the available languages in display order.
var Supported = []string{"en", "de", "es"}

// names maps a language code to its name in that language.
var names = map[string]string{
	"en": "English",
	"de": "Deutsch",
	"es": "Español",
}

var tables = map[string]map[string]string{
	"en": {
		Title:             "Code Finder",
		Subtitle:          "Search for your code quickly and efficiently.",
		SearchPlaceholder: "Search for code",
		NoResults:         "No entries found matching %q.",
		ErrorLoading:      "Error loading the entry list.",
		NothingAvailable:  "No entries available. The list might be empty or could not be loaded.",
		NothingToDisplay:  "No entries to display.",
		Loading:           "Loading",
		CopyCode:          "Copy Code",
		Copied:            "Copied!",
		CopyFailed:        "Failed to copy code!",
		LanguageLabel:     "Language",
		HelpKeys:          "↑/↓ move • enter expand • ctrl+y copy • ctrl+l language • esc quit",
	},
	"de": {
		Title:             "Code-Finder",
		Subtitle:          "Suchen Sie schnell und effizient nach Ihren Codes.",
		SearchPlaceholder: "Suche nach Code",
		NoResults:         "Keine Einträge für %q gefunden.",
		ErrorLoading:      "Fehler beim Laden der Eintragsliste.",
		NothingAvailable:  "Keine Einträge verfügbar. Die Liste ist möglicherweise leer oder konnte nicht geladen werden.",
		NothingToDisplay:  "Keine Einträge zum Anzeigen.",
		Loading:           "Wird geladen",
		CopyCode:          "Code kopieren",
		Copied:            "Kopiert!",
		CopyFailed:        "Kopieren fehlgeschlagen!",
		LanguageLabel:     "Sprache",
		HelpKeys:          "↑/↓ bewegen • enter aufklappen • ctrl+y kopieren • ctrl+l Sprache • esc beenden",
	},
	"es": {
		Title:             "Buscador de código",
		Subtitle:          "Encuentra tus códigos de forma rápida y eficiente.",
		SearchPlaceholder: "Búsqueda de códigos",
		NoResults:         "No se ha encontrado ninguna entrada que coincida con %q.",
		ErrorLoading:      "Error al cargar la lista de entradas.",
		NothingAvailable:  "No hay entradas disponibles. La lista puede estar vacía o no se pudo cargar.",
		NothingToDisplay:  "No hay entradas para mostrar.",
		Loading:           "Cargando",
		CopyCode:          "Copiar código",
		Copied:            "¡Copiado!",
		CopyFailed:        "¡No se pudo copiar el código!",
		LanguageLabel:     "Idioma",
		HelpKeys:          "↑/↓ mover • enter desplegar • ctrl+y copiar • ctrl+l idioma • esc salir",
	},
}

var (
	cat     = catalog.NewBuilder(catalog.Fallback(language.English))
	matcher language.Matcher
)

func init() {
	tags := make([]language.Tag, len(Supported))
	for i, code := range Supported {
		tags[i] = language.MustParse(code)
		for key, msg := range tables[code] {
			if err := cat.SetString(tags[i], key, msg); err != nil {
				panic(fmt.Sprintf("i18n: register %s/%s: %v", code, key, err))
			}
		}
	}
	matcher = language.NewMatcher(tags)
}

// IsSupported reports whether code is an exact supported language code.
func IsSupported(code string) bool {
	return slices.Contains(Supported, code)
}

// Validate returns ErrUnsupported for codes outside Supported.
func Validate(code string) error {
	if !IsSupported(code) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrUnsupported, code, strings.Join(Supported, ", "))
	}
	return nil
}

// Name returns the native name of a language.
func Name(code string) string {
	if n, ok := names[code]; ok {
		return n
	}
	return code
}

// Match resolves a BCP 47 or POSIX locale ("de-AT", "es_ES.UTF-8") to a
// supported code, or Default when nothing is close enough.
func Match(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	if tag == "" || tag == "C" || tag == "POSIX" {
		return Default
	}
	t, err := language.Parse(tag)
	if err != nil {
		return Default
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

// FromEnv reads the process locale the way a shell would.
func FromEnv() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// Initial picks the starting language: a supported saved preference wins,
// then the environment locale, then Default.
func Initial(saved, env string) string {
	if IsSupported(saved) {
		return saved
	}
	return Match(env)
}

// Next returns the language after code in Supported, wrapping around.
func Next(code string) string {
	i := slices.Index(Supported, code)
	return Supported[(i+1)%len(Supported)]
}

// Localizer formats messages for one language.
type Localizer struct {
	lang string
	p    *message.Printer
}

// New returns a Localizer for code, falling back to Default.
func New(code string) *Localizer {
	if !IsSupported(code) {
		code = Default
	}
	return &Localizer{
		lang: code,
		p:    message.NewPrinter(language.MustParse(code), message.Catalog(cat)),
	}
}

// Lang returns the language code in use.
func (l *Localizer) Lang() string { return l.lang }

// T returns the message for key, formatted with args.
func (l *Localizer) T(key string, args ...any) string {
	return l.p.Sprintf(key, args...)
}

// Outcome returns the message for an empty result, or "" when there are
// results to show.
func (l *Localizer) Outcome(state filter.State, query string) string {
	switch state {
	case filter.StateEmpty:
		return l.T(NothingAvailable)
	case filter.StateNoMatch:
		return l.T(NoResults, filter.Normalize(query))
	case filter.StateNothingToDisplay:
		return l.T(NothingToDisplay)
	default:
		return ""
	}
}
