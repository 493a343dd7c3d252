package extension

import (
	"context"
	"errors"
	"testing"

	"github.com/jpl-au/codefind/internal/i18n"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testExtension is a minimal Extension implementation for testing.
type testExtension struct {
	name string
}

func (e testExtension) Name() string               { return e.name }
func (e testExtension) Commands() []*cobra.Command { return nil }
func (e testExtension) MCPTools() []MCPTool        { return nil }

// recorder collects the events it is sent.
type recorder struct {
	testExtension
	got []Event
	err error
}

func (r *recorder) HandleEvent(_ Context, e Event) error {
	r.got = append(r.got, e)
	return r.err
}

func TestRegister_PanicOnDuplicate(t *testing.T) {
	name := "test-duplicate-panic"
	Register(testExtension{name: name})

	assert.Panics(t, func() { Register(testExtension{name: name}) })
}

func TestRegister_PanicOnEmptyName(t *testing.T) {
	assert.Panics(t, func() { Register(testExtension{}) })
}

func TestRegister_Order(t *testing.T) {
	Register(testExtension{name: "test-order-a"})
	Register(testExtension{name: "test-order-b"})

	names := Names()
	ia, ib := -1, -1
	for i, n := range names {
		switch n {
		case "test-order-a":
			ia = i
		case "test-order-b":
			ib = i
		}
	}
	require.NotEqual(t, -1, ia)
	assert.Less(t, ia, ib)
	assert.Equal(t, "test-order-a", Lookup("test-order-a").Name())
	assert.Nil(t, Lookup("test-order-missing"))
}

func TestDispatch(t *testing.T) {
	ok := &recorder{testExtension: testExtension{name: "test-dispatch-ok"}}
	failing := &recorder{testExtension: testExtension{name: "test-dispatch-fail"}, err: errors.New("boom")}
	Register(ok)
	Register(failing)

	ev := LanguageChangeEvent{From: "en", To: "de"}
	err := Dispatch(nil, ev)

	require.EqualError(t, err, "boom")
	assert.Equal(t, []Event{ev}, ok.got)
	assert.Equal(t, []Event{ev}, failing.got, "every handler runs")
	assert.Equal(t, EventLanguageChange, ev.EventType())
	assert.Equal(t, EventCatalogLoad, CatalogLoadEvent{}.EventType())
}

func TestNewContextDefaultsToEnglish(t *testing.T) {
	ctx := NewContext(nil, nil, nil)
	assert.Equal(t, i18n.Default, ctx.Messages().Lang())
	assert.Nil(t, ctx.Config())
}

// declaring exposes command sets and tools.
type declaring struct {
	testExtension
	noCatalog []string
	lazy      []string
	tools     []string
}

func (d declaring) NoCatalogCommands() []string { return d.noCatalog }
func (d declaring) LazyLoadCommands() []string  { return d.lazy }
func (d declaring) MCPTools() []MCPTool {
	out := make([]MCPTool, 0, len(d.tools))
	for _, name := range d.tools {
		out = append(out, MCPTool{
			Tool: mcp.NewTool(name),
			Handler: func(context.Context, Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return mcp.NewToolResultText(name), nil
			},
		})
	}
	return out
}

func TestSets(t *testing.T) {
	Register(declaring{
		testExtension: testExtension{name: "test-sets"},
		noCatalog:     []string{"test-settings"},
		lazy:          []string{"test-viewer"},
	})

	s := Sets()
	assert.True(t, s.NoCatalog["help"])
	assert.True(t, s.NoCatalog["completion"])
	assert.True(t, s.NoCatalog["test-settings"])
	assert.True(t, s.LazyLoad["test-viewer"])
	assert.False(t, s.NoCatalog["test-viewer"])
}

func TestTools(t *testing.T) {
	Register(declaring{testExtension: testExtension{name: "test-tools"}, tools: []string{"test_one", "test_two"}})

	tools, err := Tools()
	require.NoError(t, err)
	var names []string
	for _, tool := range tools {
		names = append(names, tool.Name())
	}
	assert.Contains(t, names, "test_one")
	assert.Contains(t, names, "test_two")

	Register(declaring{testExtension: testExtension{name: "test-tools-clash"}, tools: []string{"test_one"}})
	_, err = Tools()
	assert.ErrorIs(t, err, ErrDuplicateTool)
}
