package filter

import (
	"testing"

	"github.com/jpl-au/codefind/internal/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []item.Item {
	return []item.Item{
		item.New("get-http-client.html"),
		item.New("Alpha_One").WithContent("<div class=\"card\">Hello</div>"),
		item.New("Beta Two").WithContent("// Error: Could not load code for Beta Two. Check if file Beta_Two.txt exists."),
		item.New("json_parser.html"),
	}
}

func names(items []item.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "http", Normalize("  HTTP \t"))
	assert.Equal(t, "", Normalize("   "))
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	items := sampleItems()
	for _, q := range []string{"", "   ", "\t"} {
		got := Filter(items, q, FieldName|FieldContent)
		assert.Equal(t, items, got, "query %q", q)
	}
}

func TestFilter_Fields(t *testing.T) {
	items := sampleItems()

	tests := []struct {
		name   string
		query  string
		fields Field
		want   []string
	}{
		{"raw name", "http-client", FieldName, []string{"get-http-client.html"}},
		{"display name only", "http client", FieldDisplayName, []string{"get-http-client.html"}},
		{"display name not searched", "http client", FieldName, nil},
		{"content", "card", FieldName | FieldContent, []string{"Alpha_One"}},
		{"content not searched", "card", FieldName | FieldDisplayName, nil},
		{"placeholder is searchable", "beta_two.txt", FieldContent, []string{"Beta Two"}},
		{"case insensitive", "JSON", FieldName, []string{"json_parser.html"}},
		{"query trimmed", "  alpha  ", FieldName, []string{"Alpha_One"}},
		{"several matches keep order", ".html", FieldName, []string{"get-http-client.html", "json_parser.html"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(items, tt.query, tt.fields)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFilter_MonotonicNarrowing(t *testing.T) {
	items := sampleItems()
	fields := FieldName | FieldDisplayName | FieldContent
	pairs := [][2]string{
		{"h", "ht"},
		{"ht", "http"},
		{"a", "alpha"},
		{"", "card"},
		{"e", "error"},
	}
	for _, p := range pairs {
		wide := names(Filter(items, p[0], fields))
		narrow := names(Filter(items, p[1], fields))
		for _, n := range narrow {
			assert.Contains(t, wide, n, "%q result must be a subset of %q result", p[1], p[0])
		}
	}
}

func TestFilter_Deterministic(t *testing.T) {
	items := sampleItems()
	first := Filter(items, "a", FieldName|FieldContent)
	for range 5 {
		assert.Equal(t, first, Filter(items, "a", FieldName|FieldContent))
	}
}

func TestVisible(t *testing.T) {
	items := sampleItems()
	vis := Visible(items, "HELLO", FieldName|FieldContent)
	require.Len(t, vis, len(items))
	assert.Equal(t, []bool{false, true, false, false}, vis)
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "name+content", (FieldName | FieldContent).String())
	assert.Equal(t, "name+display", (FieldName | FieldDisplayName).String())
	assert.Equal(t, "none", Field(0).String())
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, StateResults, Outcome(3, 1, "x"))
	assert.Equal(t, StateEmpty, Outcome(0, 0, ""))
	assert.Equal(t, StateEmpty, Outcome(0, 0, "x"))
	assert.Equal(t, StateNoMatch, Outcome(3, 0, "x"))
	assert.Equal(t, StateNothingToDisplay, Outcome(3, 0, " "))
}
