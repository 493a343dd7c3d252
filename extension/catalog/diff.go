// diff.go implements the "codefind diff" command.

package catalog

import (
	"fmt"
	"io"

	"github.com/jpl-au/codefind/cmd"
	"github.com/jpl-au/codefind/extension"
	"github.com/jpl-au/codefind/internal/diff"
	"github.com/jpl-au/codefind/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newDiffCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Show differences between two entries",
		Long: `Show a line diff between the bodies of two entries.

  codefind diff "Card Layout" "Card Layout Dark"`,
		Args: cobra.ExactArgs(2),
		RunE: e.runDiff,
	}
	c.Flags().Bool(extension.FlagRaw, false, "Output without colour")
	return c
}

func (e *Extension) runDiff(c *cobra.Command, args []string) error {
	raw, _ := c.Flags().GetBool(extension.FlagRaw)
	a, b := args[0], args[1]

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	r, err := diff.Run(w, e.svc, a, b, !raw)

	log.Event("catalog:diff", "diff").
		Variant(e.svc.Variant().Name).
		Item(a).
		Detail("other", b).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("diff: %w", err))
	}
	return cmd.PrintJSON(map[string]any{
		"old":  r.Old,
		"new":  r.New,
		"same": r.Same(),
		"diff": r.Diff,
	})
}
