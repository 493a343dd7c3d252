// Package cat prints the body of one catalog entry.
//
// Entries of link variants have no body; for those the link target is
// printed instead so "cat" always says where the entry lives.
package cat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/codefind/internal/item"
	"github.com/jpl-au/codefind/internal/service"
)

// minLineNumWidth is the minimum column width for line numbers.
const minLineNumWidth = 4

// maxLine bounds a single scanned line; snippets are often minified.
const maxLine = 10 * 1024 * 1024

// Options configures a cat operation.
type Options struct {
	LineNumbers bool
	StartLine   int // first line to show (1-indexed, 0 = start)
	EndLine     int // last line to show (1-indexed, 0 = end)

	// Render wraps the body in a code block and renders it with glamour.
	// Ignored when a line range or line numbers are requested.
	Render bool
	Style  string // glamour style, "dark" when empty
	Lang   string // code block language hint, e.g. "html"
}

// Result contains the outcome of a cat operation.
type Result struct {
	Item item.Item
	Link string // set for entries without a body
}

// Run looks up name and writes its body to w.
func Run(w io.Writer, svc service.Service, name string, opts Options) (Result, error) {
	var result Result

	it, err := svc.Item(name)
	if err != nil {
		return result, fmt.Errorf("%s: %w", name, err)
	}
	result.Item = it

	if !it.HasContent {
		result.Link = svc.Resolve(it)
		fmt.Fprintln(w, result.Link)
		return result, nil
	}

	if opts.StartLine == 0 && opts.EndLine == 0 && !opts.LineNumbers {
		if opts.Render {
			if out, err := render(it.Content, opts); err == nil {
				fmt.Fprint(w, out)
				return result, nil
			}
		}
		fmt.Fprint(w, it.Content)
		return result, nil
	}

	return result, lines(w, it.Content, opts)
}

func render(body string, opts Options) (string, error) {
	style := opts.Style
	if style == "" {
		style = "dark"
	}
	md := "```" + opts.Lang + "\n" + strings.TrimRight(body, "\n") + "\n```\n"
	return glamour.Render(md, style)
}

// lines writes the requested range, optionally numbered.
func lines(w io.Writer, body string, opts Options) error {
	total := strings.Count(body, "\n") + 1
	trailing := strings.HasSuffix(body, "\n")
	if trailing {
		total--
	}

	start, end := 1, total
	if opts.StartLine > 0 {
		start = opts.StartLine
	}
	if opts.EndLine > 0 && opts.EndLine < end {
		end = opts.EndLine
	}
	width := max(len(strconv.Itoa(end)), minLineNumWidth)

	sc := bufio.NewScanner(strings.NewReader(body))
	sc.Buffer(make([]byte, 64*1024), maxLine)
	n := 0
	for sc.Scan() {
		n++
		if n < start {
			continue
		}
		if n > end {
			break
		}
		if opts.LineNumbers {
			fmt.Fprintf(w, "%*d\t%s", width, n, sc.Text())
		} else {
			fmt.Fprint(w, sc.Text())
		}
		if n < end || trailing {
			fmt.Fprintln(w)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading content: %w", err)
	}
	return nil
}
