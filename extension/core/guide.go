// guide.go implements the "codefind guide" command. Guides are embedded in
// the binary; a terminal gets glamour rendering, a pipe gets raw markdown.

package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/codefind/cmd"
	"github.com/jpl-au/codefind/guide"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the codefind usage guide",
		Long: `Outputs the codefind guide.

  codefind guide           # main guide
  codefind guide variants  # catalog variants
  codefind guide browse    # interactive browser keys`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			topics, _ := guide.List()
			return topics, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return printGuide(name)
		},
	}
}

// printGuide writes a guide page, rendered when stdout is a terminal.
func printGuide(name string) error {
	content, err := guide.Get(name)
	if err != nil {
		available, listErr := guide.List()
		if listErr != nil {
			return listErr
		}
		return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"topic": name, "content": content})
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		rendered, err := glamour.Render(content, "dark")
		if err == nil {
			fmt.Fprint(cmd.Out(), rendered)
			return nil
		}
	}

	fmt.Fprint(cmd.Out(), content)
	return nil
}
