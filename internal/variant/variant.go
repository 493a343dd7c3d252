// Package variant describes the kinds of catalog codefind can browse.
//
// The widgets this tool replaces came in three flavours that differed in
// which manifest they read, whether they fetched bodies and which fields
// their search box looked at. Each flavour is spelled out here instead of
// sharing one default, so changing one never silently changes another.
package variant

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jpl-au/codefind/internal/filter"
	"github.com/jpl-au/codefind/internal/format"
)

// ErrUnknown is returned by Get for an unrecognised variant name.
var ErrUnknown = errors.New("unknown variant")

// Variant configures how a catalog is loaded, searched and shown.
type Variant struct {
	Name        string
	Manifest    string       // default manifest resource
	LoadContent bool         // fetch <sanitised-name>.txt per entry
	Fields      filter.Field // searchable fields
	Links       bool         // entries point at the resource named by the manifest line
	Title       format.Titler
}

const (
	Snippets = "snippets"
	Codes    = "codes"
	AppIDs   = "appids"
)

// Default is used when nothing is configured.
const Default = Snippets

var variants = map[string]Variant{
	// Code snippet library: collapsible entries with bodies. Search covers
	// the raw name and the body, not the display title.
	Snippets: {
		Name:        Snippets,
		Manifest:    "code_modul.txt",
		LoadContent: true,
		Fields:      filter.FieldName | filter.FieldContent,
		Title:       format.SnippetTitle,
	},
	// Code page index: each line is an HTML file name shown as a link.
	Codes: {
		Name:     Codes,
		Manifest: "codes.txt",
		Fields:   filter.FieldName | filter.FieldDisplayName,
		Links:    true,
		Title:    format.DisplayName,
	},
	// App ID index: same shape as Codes with its own manifest.
	AppIDs: {
		Name:     AppIDs,
		Manifest: "APP_ID.txt",
		Fields:   filter.FieldName | filter.FieldDisplayName,
		Links:    true,
		Title:    format.DisplayName,
	},
}

// Get returns the named variant.
func Get(name string) (Variant, error) {
	if name == "" {
		name = Default
	}
	v, ok := variants[name]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %s (valid: %v)", ErrUnknown, name, Names())
	}
	return v, nil
}

// Names returns the variant names in sorted order.
func Names() []string {
	names := make([]string, 0, len(variants))
	for n := range variants {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// WithManifest returns a copy reading a different manifest resource.
func (v Variant) WithManifest(name string) Variant {
	if name != "" {
		v.Manifest = name
	}
	return v
}
