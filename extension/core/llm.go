// llm.go implements "codefind llm", a short onboarding page for AI
// assistants. The text lives in guide/llm.md.

package core

import "github.com/spf13/cobra"

func newLlmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "llm",
		Short: "Getting started guide for LLMs",
		Long:  `Quick reference for LLMs: how to list, search and read catalog entries, from the shell or over MCP.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printGuide("llm")
		},
	}
}
