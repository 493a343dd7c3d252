// find.go implements the "codefind find" command.

package catalog

import (
	"fmt"
	"io"

	"github.com/jpl-au/codefind/cmd"
	"github.com/jpl-au/codefind/extension"
	"github.com/jpl-au/codefind/internal/find"
	"github.com/jpl-au/codefind/internal/log"
	"github.com/jpl-au/codefind/internal/service"
	"github.com/spf13/cobra"
)

func (e *Extension) newFindCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "find <query>",
		Short: "Search catalog entries",
		Long: `Case-insensitive substring search over the fields the variant searches:
snippets match on name and body, codes and appids on raw and display name.

Entries matched by their body show the matching lines.

  codefind find http
  codefind find -l "card layout"`,
		Args: cobra.ExactArgs(1),
		RunE: e.runFind,
	}
	c.Flags().BoolP(extension.FlagNames, "l", false, "Only output raw names")
	c.Flags().Bool(extension.FlagContent, false, "Include bodies in JSON output")
	return c
}

func (e *Extension) runFind(c *cobra.Command, args []string) error {
	query := args[0]
	namesOnly, _ := c.Flags().GetBool(extension.FlagNames)
	withContent, _ := c.Flags().GetBool(extension.FlagContent)

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	result, err := find.Run(w, e.svc, query, find.Options{NamesOnly: namesOnly, Messages: e.msg})

	log.Event("catalog:find", "search").
		Variant(e.svc.Variant().Name).
		Detail("query", query).
		Detail("state", result.State.String()).
		Count(len(result.Items)).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("find %q: %w", query, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{
			"query":   query,
			"state":   result.State.String(),
			"message": e.msg.Outcome(result.State, query),
			"items":   service.ToJSON(e.svc, result.Items, withContent),
		})
	}
	return nil
}
