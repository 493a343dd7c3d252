// Package browse provides the interactive browser command.
package browse

import (
	"errors"
	"fmt"

	"github.com/jpl-au/codefind/cmd"
	"github.com/jpl-au/codefind/extension"
	"github.com/jpl-au/codefind/internal/config"
	"github.com/jpl-au/codefind/internal/i18n"
	"github.com/jpl-au/codefind/internal/log"
	"github.com/jpl-au/codefind/internal/manifest"
	"github.com/jpl-au/codefind/internal/tui"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the browse extension.
type Extension struct {
	ctx extension.Context
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.LazyLoader    = (*Extension)(nil)
)

// Name returns "browse".
func (e *Extension) Name() string { return "browse" }

// Init keeps the context; the browser loads the catalog itself.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the browse command.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{{
		Use:   "browse",
		Short: "Browse and filter entries interactively",
		Long: `Open an interactive browser. Entries appear as they load; typing filters
the list. Enter expands a snippet, ctrl+y copies it, ctrl+l switches the
message language (and saves it), esc quits.`,
		Args: cobra.NoArgs,
		RunE: e.runBrowse,
	}}
}

// MCPTools returns nil.
func (e *Extension) MCPTools() []extension.MCPTool { return nil }

// LazyLoadCommands returns browse, which streams the load into the UI.
func (e *Extension) LazyLoadCommands() []string { return []string{"browse"} }

func (e *Extension) runBrowse(c *cobra.Command, _ []string) error {
	if cmd.JSON() {
		return cmd.PrintJSONError(fmt.Errorf("browse is interactive and has no JSON output"))
	}
	svc := e.ctx.Service()

	err := tui.Run(c.Context(), svc, e.ctx.Messages(), tui.Options{SaveLang: e.saveLang})

	log.Event("browse:browse", "browse").
		Variant(svc.Variant().Name).
		Resolved(svc.Source()).
		Count(svc.Len()).
		Write(err)

	var loadErr *manifest.LoadError
	if errors.As(err, &loadErr) {
		return fmt.Errorf("%s %w", e.ctx.Messages().T(i18n.ErrorLoading), err)
	}
	return err
}

// saveLang writes the language preference to the config the user reads
// from, as "codefind lang" does.
func (e *Extension) saveLang(code string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	from := cfg.Lang()
	if err := cfg.Set("language", code); err != nil {
		return err
	}
	err = cfg.Save()
	log.Event("browse:lang", "set").Detail("lang", code).Write(err)
	if err == nil {
		_ = extension.Dispatch(e.ctx, extension.LanguageChangeEvent{From: from, To: code})
	}
	return err
}
