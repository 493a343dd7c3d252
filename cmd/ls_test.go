package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLs(t *testing.T) {
	t.Run("manifest order", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("ls")
		env.equals(out, "Card Layout\nButton\nMissing One\nHTTP Client")
	})

	t.Run("glob", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("ls", "*Layout*")
		env.equals(out, "Card Layout")
	})

	t.Run("glob by key", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("ls", "HTTP_*")
		env.equals(out, "HTTP Client")
	})

	t.Run("invalid glob", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.runErr("ls", "[")
		assert.Error(t, err)
	})

	t.Run("long format", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("ls", "-l")
		env.contains(out, "SIZE")
		env.contains(out, "Card_Layout")
		env.contains(out, "Missing_One")
	})

	t.Run("names", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("ls", "--variant", "codes", "--names")
		env.equals(out, "get-http-client.html\njson_parser.html")
	})
}

func TestLs_Variants(t *testing.T) {
	t.Run("codes are links", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("ls", "--variant", "codes")
		env.contains(out, "Get Http Client")
		env.contains(out, "Json Parser")
		env.contains(out, "get-http-client.html")
	})

	t.Run("appids from env", func(t *testing.T) {
		env := newTestEnv(t)
		env.setenv(EnvVariant, "appids")

		out := env.run("ls")
		env.contains(out, "Main App")
		env.contains(out, "Admin Tool")
	})

	t.Run("manifest override", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("ls", "--variant", "codes", "--manifest", "APP_ID.txt", "--names")
		env.equals(out, "Main App\nadmin-tool")
	})

	t.Run("unknown variant", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("ls", "--variant", "nope")
		assert.Error(t, err)
		env.contains(out, "unknown variant")
	})
}

func TestLs_JSON(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("ls", "-o", "json", "--content")

	var items []struct {
		Name    string `json:"name"`
		Title   string `json:"title"`
		Key     string `json:"key"`
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 4)
	assert.Equal(t, "Card Layout", items[0].Name)
	assert.Equal(t, "Card_Layout", items[0].Key)
	assert.Equal(t, "<button>Go</button>\n", items[1].Content)
	assert.Equal(t, "// Error: Could not load code for Missing One. Check if file Missing_One.txt exists.", items[2].Content)
}

func TestLs_Concurrent(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("ls", "--concurrent")
	env.equals(out, "Card Layout\nButton\nMissing One\nHTTP Client")
}
