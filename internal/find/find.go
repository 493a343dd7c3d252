// Package find filters a catalog by query and prints the matches.
//
// Matching is delegated to the catalog (and so to the variant's search
// fields); this package only decides how results and empty outcomes are
// shown.
package find

import (
	"io"

	"github.com/jpl-au/codefind/internal/filter"
	"github.com/jpl-au/codefind/internal/format"
	"github.com/jpl-au/codefind/internal/i18n"
	"github.com/jpl-au/codefind/internal/item"
	"github.com/jpl-au/codefind/internal/service"
)

// Options configures a search operation.
type Options struct {
	NamesOnly bool            // only output raw names
	Messages  *i18n.Localizer // empty-result messages; nil for English
}

// Result contains the outcome of a search operation.
type Result struct {
	Items []item.Item
	State filter.State
}

// Run searches the catalog and writes output to w. An empty outcome writes
// its localised message instead of a list.
func Run(w io.Writer, svc service.Service, query string, opts Options) (Result, error) {
	var result Result

	result.Items = svc.Search(query)
	result.State = filter.Outcome(svc.Len(), len(result.Items), query)

	if result.State != filter.StateResults {
		l := opts.Messages
		if l == nil {
			l = i18n.New(i18n.Default)
		}
		return result, format.Message(w, l.Outcome(result.State, query))
	}

	var err error
	if opts.NamesOnly {
		err = format.Names(w, result.Items)
	} else {
		err = format.SearchResults(w, result.Items, query, svc.Variant().Title)
	}
	return result, err
}
