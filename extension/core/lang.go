// lang.go implements the "codefind lang" command, which shows or saves the
// message language.

package core

import (
	"fmt"

	"github.com/jpl-au/codefind/cmd"
	"github.com/jpl-au/codefind/extension"
	"github.com/jpl-au/codefind/internal/config"
	"github.com/jpl-au/codefind/internal/i18n"
	"github.com/jpl-au/codefind/internal/log"
	"github.com/spf13/cobra"
)

func newLangCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "lang [code]",
		Short: "Show or set the message language",
		Long: `Show or set the language used for messages.

  codefind lang      # show the active language and where it came from
  codefind lang de   # save German as the preference

Supported: en, de, es. Without a saved preference the language follows
LC_ALL, LC_MESSAGES or LANG, falling back to English.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: i18n.Supported,
		RunE:      runLang,
	}
	c.Flags().Bool(extension.FlagLocal, false, "Save to local config (.codefind/config.yaml)")
	return c
}

func runLang(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(extension.FlagLocal)

	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	if len(args) == 0 {
		code, err := cmd.Lang(cfg)
		if err != nil {
			return cmd.PrintJSONError(err)
		}
		origin := "environment"
		if cfg.Lang() != "" {
			origin = "saved"
		}
		log.Event("core:lang", "get").Detail("lang", code).Write(nil)
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]any{"language": code, "name": i18n.Name(code), "origin": origin, "supported": i18n.Supported})
		}
		fmt.Fprintf(cmd.Out(), "%s (%s, %s)\n", code, i18n.Name(code), origin)
		return nil
	}

	from := cfg.Lang()
	code := args[0]
	err = cfg.Set("language", code)
	if err == nil {
		err = cfg.Save()
	}

	log.Event("core:lang", "set").Detail("lang", code).Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("lang %q: %w", code, err))
	}
	_ = extension.Dispatch(cmd.Context(), extension.LanguageChangeEvent{From: from, To: code})

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"language": code, "name": i18n.Name(code)})
	}
	fmt.Fprintf(cmd.Out(), "language = %s (%s)\n", code, i18n.Name(code))
	return nil
}
