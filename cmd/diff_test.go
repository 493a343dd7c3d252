package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	t.Run("two entries", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("diff", "Button", "Card Layout", "--raw")
		env.contains(out, "--- Button")
		env.contains(out, "+++ Card Layout")
		env.contains(out, "- <button>Go</button>")
		env.contains(out, "+ <div class=\"card\">")
	})

	t.Run("identical", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("diff", "Button", "Button", "-o", "json")
		var res struct {
			Same bool `json:"same"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.True(t, res.Same)
	})

	t.Run("unknown entry", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.runErr("diff", "Button", "Nope")
		assert.Error(t, err)
	})
}
