// cat.go implements the "codefind cat" command.
//
// A terminal gets the body as a glamour-rendered code block; a pipe gets
// the raw text. The -L flag uses colon syntax (10:20) matching sed/awk.

package catalog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jpl-au/codefind/cmd"
	"github.com/jpl-au/codefind/extension"
	"github.com/jpl-au/codefind/internal/cat"
	"github.com/jpl-au/codefind/internal/item"
	"github.com/jpl-au/codefind/internal/log"
	"github.com/jpl-au/codefind/internal/service"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (e *Extension) newCatCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "cat <name>",
		Short: "Print an entry",
		Long: `Print the body of an entry, looked up by name or key (spaces as _).
Entries of link variants print their link target.

  codefind cat "Card Layout"
  codefind cat Card_Layout -n -L 1:10`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: e.runCat,
	}
	c.Flags().BoolP(extension.FlagNumber, "n", false, "Number all output lines")
	c.Flags().StringP(extension.FlagLines, "L", "", "Line range (e.g., 10:20, 5:, :15)")
	c.Flags().Bool(extension.FlagRaw, false, "Output raw text without rendering")
	c.Flags().String(extension.FlagStyle, "dark", "glamour style for rendered output")
	return c
}

func (e *Extension) runCat(c *cobra.Command, args []string) error {
	lineNums, _ := c.Flags().GetBool(extension.FlagNumber)
	lineRange, _ := c.Flags().GetString(extension.FlagLines)
	raw, _ := c.Flags().GetBool(extension.FlagRaw)
	style, _ := c.Flags().GetString(extension.FlagStyle)

	opts := cat.Options{
		LineNumbers: lineNums,
		Style:       style,
		Render:      !raw && !cmd.JSON() && term.IsTerminal(int(os.Stdout.Fd())),
	}
	if lineRange != "" {
		start, end, err := parseLineRange(lineRange)
		if err != nil {
			return cmd.PrintJSONError(err)
		}
		opts.StartLine = start
		opts.EndLine = end
	}

	name := args[0]
	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	result, err := cat.Run(w, e.svc, name, opts)

	log.Event("catalog:cat", "read").
		Variant(e.svc.Variant().Name).
		Item(name).
		Resolved(result.Link).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("cat %q: %w", name, err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(service.ToJSON(e.svc, []item.Item{result.Item}, true)[0])
	}
	return nil
}

// parseLineRange parses a line range string like "10:20", "5:", or ":15".
// Returns start and end line numbers (1-indexed), where 0 means unspecified.
func parseLineRange(s string) (start, end int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid line range %q: expected format START:END", s)
	}

	if parts[0] != "" {
		_, err := fmt.Sscanf(parts[0], "%d", &start)
		if err != nil || start < 1 {
			return 0, 0, fmt.Errorf("invalid start line %q", parts[0])
		}
	}

	if parts[1] != "" {
		_, err := fmt.Sscanf(parts[1], "%d", &end)
		if err != nil || end < 1 {
			return 0, 0, fmt.Errorf("invalid end line %q", parts[1])
		}
	}

	if start > 0 && end > 0 && start > end {
		return 0, 0, fmt.Errorf("start line %d is greater than end line %d", start, end)
	}

	return start, end, nil
}
