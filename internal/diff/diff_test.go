package diff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jpl-au/codefind/internal/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type items map[string]item.Item

func (m items) Item(name string) (item.Item, error) {
	it, ok := m[name]
	if !ok {
		return item.Item{}, item.ErrNotFound
	}
	return it, nil
}

func TestCompute(t *testing.T) {
	r := Compute("a\nb\nc\n", "a\nB\nc\n", "one", "two")
	assert.Equal(t, "  a\n- b\n+ B\n  c\n", r.Diff)
	assert.False(t, r.Same())
	assert.Equal(t, "--- one\n+++ two\n  a\n- b\n+ B\n  c\n", r.Format(false))
}

func TestCompute_Identical(t *testing.T) {
	r := Compute("same\n", "same\n", "a", "b")
	assert.True(t, r.Same())
}

func TestCompute_CollapsesLongEqualRuns(t *testing.T) {
	var lines []string
	for range 10 {
		lines = append(lines, "x")
	}
	body := strings.Join(lines, "\n") + "\n"
	r := Compute(body+"old\n", body+"new\n", "a", "b")
	assert.Contains(t, r.Diff, "  ...\n")
	assert.Equal(t, 3, strings.Count(strings.SplitN(r.Diff, "...", 2)[0], "  x"))
}

func TestFormat_Colour(t *testing.T) {
	out := Compute("kept\ngone\n", "kept\nadded\n", "a", "b").Format(true)
	assert.Contains(t, out, "\033[31m- gone\033[0m")
	assert.Contains(t, out, "\033[32m+ added\033[0m")
	assert.Contains(t, out, "  kept\n")
}

func TestCompute_Lines(t *testing.T) {
	r := Compute("a\nb\n", "a\nc\n", "x", "y")
	assert.Equal(t, []Line{
		{Op: Equal, Text: "a"},
		{Op: Delete, Text: "b"},
		{Op: Insert, Text: "c"},
	}, r.Lines)
}

func TestRun(t *testing.T) {
	svc := items{
		"A": item.New("A").WithContent("<div>\n</div>\n"),
		"B": item.New("B").WithContent("<span>\n</div>\n"),
	}
	var buf bytes.Buffer
	r, err := Run(&buf, svc, "A", "B", false)
	require.NoError(t, err)
	assert.Equal(t, "A", r.Old)
	assert.Contains(t, buf.String(), "- <div>\n+ <span>\n")

	_, err = Run(&buf, svc, "A", "missing", false)
	assert.ErrorIs(t, err, item.ErrNotFound)
}
