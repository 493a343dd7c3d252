package manifest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jpl-au/codefind/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memFetcher serves resources from a map.
type memFetcher map[string]string

func (m memFetcher) Fetch(_ context.Context, name string) (string, error) {
	body, ok := m[name]
	if !ok {
		return "", &source.StatusError{Name: name, Status: 404}
	}
	return body, nil
}

func (m memFetcher) Resolve(name string) string { return name }

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"blank lines dropped", "Alpha_One\n\n  Beta Two  \n", []string{"Alpha_One", "Beta Two"}},
		{"crlf", "a.html\r\nb.html\r\n", []string{"a.html", "b.html"}},
		{"empty", "", []string{}},
		{"only whitespace", " \n\t\n  ", []string{}},
		{"order kept", "z\ny\nx", []string{"z", "y", "x"}},
		{"duplicates kept", "a\na", []string{"a", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text))
		})
	}
}

func TestParse_CountsNonBlankLines(t *testing.T) {
	lines := []string{"one", "", "  two ", "\t", "three", "", "four  "}
	got := Parse(strings.Join(lines, "\n"))
	assert.Len(t, got, 4)
	assert.Equal(t, []string{"one", "two", "three", "four"}, got)
}

func TestLoad(t *testing.T) {
	f := memFetcher{"code_modul.txt": strings.Join([]string{"Alpha_One", "", "  Beta Two  ", ""}, "\n")}

	got, err := Load(context.Background(), f, "code_modul.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha_One", "Beta Two"}, got)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(context.Background(), memFetcher{}, "codes.txt")
	require.Error(t, err)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "codes.txt", le.Name)
	assert.True(t, source.IsNotFound(err), "cause should stay reachable")
}
