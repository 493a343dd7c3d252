package cmd

import "testing"

func TestGuide(t *testing.T) {
	t.Run("main guide", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("guide")
		env.contains(out, "# codefind")
		env.contains(out, "## Commands")
	})

	t.Run("lists available on not found", func(t *testing.T) {
		env := newTestEnv(t)

		out, _ := env.runErr("guide", "nonexistent")
		env.contains(out, "Available:")
		env.contains(out, "variants")
	})

	t.Run("needs no source", func(t *testing.T) {
		env := newTestEnv(t)
		env.setenv(EnvSource, "")

		out := env.run("guide", "variants")
		env.contains(out, "code_modul.txt")
	})
}

func TestGuide_Topics(t *testing.T) {
	tests := []struct {
		topic   string
		contain string
	}{
		{"ls", "codefind ls"},
		{"find", "codefind find"},
		{"cat", "codefind cat"},
		{"browse", "ctrl+y"},
		{"lang", "codefind lang"},
		{"serve", "codefind_search"},
	}

	for _, tc := range tests {
		t.Run(tc.topic, func(t *testing.T) {
			env := newTestEnv(t)

			out := env.run("guide", tc.topic)
			env.contains(out, tc.contain)
		})
	}
}

func TestLlm(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("llm")
	env.contains(out, "codefind for LLMs")
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	env.setenv(EnvSource, "")

	out := env.run("version")
	env.contains(out, "Build Tag:")
	env.contains(out, "Variants:     appids, codes, snippets")
}
