// ls.go implements the "codefind ls" command.

package catalog

import (
	"fmt"
	"io"

	"github.com/jpl-au/codefind/cmd"
	"github.com/jpl-au/codefind/extension"
	"github.com/jpl-au/codefind/internal/filter"
	"github.com/jpl-au/codefind/internal/format"
	"github.com/jpl-au/codefind/internal/log"
	"github.com/jpl-au/codefind/internal/ls"
	"github.com/jpl-au/codefind/internal/service"
	"github.com/spf13/cobra"
)

func (e *Extension) newLsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ls [glob]",
		Short: "List catalog entries",
		Long: `List catalog entries in manifest order, optionally narrowed by a glob over
entry names (*, ?, [..], {a,b}).

  codefind ls
  codefind ls 'http*'
  codefind ls -l`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runLs,
	}
	c.Flags().BoolP(extension.FlagLong, "l", false, "Long format: size, key and raw name")
	c.Flags().Bool(extension.FlagNames, false, "Raw names only")
	c.Flags().Bool(extension.FlagLinks, false, "Show where each entry lives")
	c.Flags().Bool(extension.FlagContent, false, "Include bodies in JSON output")
	return c
}

func (e *Extension) runLs(c *cobra.Command, args []string) error {
	var opts ls.Options
	if len(args) > 0 {
		opts.Pattern = args[0]
	}
	opts.Long, _ = c.Flags().GetBool(extension.FlagLong)
	opts.Names, _ = c.Flags().GetBool(extension.FlagNames)
	opts.Links, _ = c.Flags().GetBool(extension.FlagLinks)
	withContent, _ := c.Flags().GetBool(extension.FlagContent)

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	result, err := ls.Run(w, e.svc, opts)

	log.Event("catalog:ls", "list").
		Variant(e.svc.Variant().Name).
		Detail("pattern", opts.Pattern).
		Count(result.Count()).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("ls %q: %w", opts.Pattern, err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(service.ToJSON(e.svc, result.Items, withContent))
	}
	if e.svc.Len() == 0 {
		return format.Message(cmd.Out(), e.msg.Outcome(filter.StateEmpty, ""))
	}
	return nil
}
