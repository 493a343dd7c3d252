// Package diff compares the bodies of two catalog entries.
package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/jpl-au/codefind/internal/item"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is how many unchanged lines are kept on each side of a
// change. Longer equal runs collapse to "...".
const contextLines = 3

// Op marks what happened to a line.
type Op byte

const (
	Equal  Op = ' '
	Delete Op = '-'
	Insert Op = '+'
	Elided Op = '.'
)

// Line is one line of diff output.
type Line struct {
	Op   Op
	Text string
}

// Lookup finds an entry by name.
type Lookup interface {
	Item(name string) (item.Item, error)
}

// Run diffs the entries named a and b and writes the result to w.
func Run(w io.Writer, svc Lookup, a, b string, colour bool) (Result, error) {
	left, err := svc.Item(a)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", a, err)
	}
	right, err := svc.Item(b)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", b, err)
	}
	r := Compute(left.Content, right.Content, left.Name, right.Name)
	fmt.Fprint(w, r.Format(colour))
	return r, nil
}

// Result is the diff between two entries. Diff is the uncoloured text.
type Result struct {
	Old   string `json:"old"`
	New   string `json:"new"`
	Diff  string `json:"diff"`
	Lines []Line `json:"-"`
}

// Same reports whether the two bodies were identical.
func (r Result) Same() bool {
	for _, l := range r.Lines {
		if l.Op == Delete || l.Op == Insert {
			return false
		}
	}
	return true
}

// Compute diffs two bodies line by line.
func Compute(oldContent, newContent, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	a, b, index := dmp.DiffLinesToChars(oldContent, newContent)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), index)

	lines := toLines(diffs)
	return Result{
		Old:   oldLabel,
		New:   newLabel,
		Diff:  render(lines, false),
		Lines: lines,
	}
}

func toLines(diffs []diffmatchpatch.Diff) []Line {
	var out []Line
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" {
			continue
		}
		split := strings.Split(text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			out = appendOp(out, Delete, split)
		case diffmatchpatch.DiffInsert:
			out = appendOp(out, Insert, split)
		case diffmatchpatch.DiffEqual:
			if len(split) > 2*contextLines {
				out = appendOp(out, Equal, split[:contextLines])
				out = append(out, Line{Op: Elided, Text: "..."})
				split = split[len(split)-contextLines:]
			}
			out = appendOp(out, Equal, split)
		}
	}
	return out
}

func appendOp(out []Line, op Op, texts []string) []Line {
	for _, t := range texts {
		out = append(out, Line{Op: op, Text: t})
	}
	return out
}

const (
	red   = "\033[31m"
	green = "\033[32m"
	reset = "\033[0m"
)

func render(lines []Line, colour bool) string {
	var b strings.Builder
	for _, l := range lines {
		prefix := string(l.Op) + " "
		if l.Op == Elided {
			prefix = "  "
		}
		switch {
		case colour && l.Op == Delete:
			b.WriteString(red + prefix + l.Text + reset + "\n")
		case colour && l.Op == Insert:
			b.WriteString(green + prefix + l.Text + reset + "\n")
		default:
			b.WriteString(prefix + l.Text + "\n")
		}
	}
	return b.String()
}

// Format returns the diff under a ---/+++ header, coloured for terminals.
func (r Result) Format(colour bool) string {
	return fmt.Sprintf("--- %s\n+++ %s\n", r.Old, r.New) + render(r.Lines, colour)
}
