// Package ls lists catalog entries.
//
// Entries always come out in manifest order. A glob pattern narrows the
// list by name; there is no sorting, since the manifest author's order is
// the order the widget showed.
package ls

import (
	"io"

	"github.com/jpl-au/codefind/internal/format"
	"github.com/jpl-au/codefind/internal/glob"
	"github.com/jpl-au/codefind/internal/item"
	"github.com/jpl-au/codefind/internal/service"
)

// Options configures a list operation.
type Options struct {
	Pattern string // doublestar glob over names, empty for all
	Long    bool   // size, key and raw name columns
	Names   bool   // raw names only
	Links   bool   // title followed by link target (defaults on for link variants)
}

// Result contains the outcome of a list operation.
type Result struct {
	Items []item.Item
}

// Count returns the number of entries listed.
func (r Result) Count() int { return len(r.Items) }

// Run lists entries and writes formatted output to w.
func Run(w io.Writer, svc service.Service, opts Options) (Result, error) {
	var result Result

	items, err := glob.Filter(opts.Pattern, svc.Items())
	if err != nil {
		return result, err
	}
	result.Items = items

	switch {
	case opts.Long:
		err = format.Long(w, items)
	case opts.Names:
		err = format.Names(w, items)
	case opts.Links || svc.Variant().Links:
		err = format.Links(w, items, svc.Variant().Title, func(name string) string {
			return svc.Resolve(item.New(name))
		})
	default:
		err = format.List(w, items, svc.Variant().Title)
	}
	return result, err
}
