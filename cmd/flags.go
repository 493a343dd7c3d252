/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Extensions read these through the exported accessors rather than the
// variables, so precedence (flag, then environment, then config) is decided
// in one place.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/codefind/internal/config"
	"github.com/jpl-au/codefind/internal/i18n"
	"github.com/jpl-au/codefind/internal/variant"
	"github.com/spf13/cobra"
)

// Environment variables consulted when the matching flag is not set.
const (
	EnvSource  = "CODEFIND_SOURCE"
	EnvVariant = "CODEFIND_VARIANT"
)

var validOutputFormats = []string{"json"}

var (
	output      string
	source      string
	variantName string
	manifest    string
	lang        string
	concurrent  bool
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// Output returns the output format flag value.
func Output() string { return output }

// Source returns the catalog base.
// Priority: --source flag > CODEFIND_SOURCE > source.base in config.
func Source(cfg *config.Config) string {
	if source != "" {
		return source
	}
	if v := os.Getenv(EnvSource); v != "" {
		return v
	}
	if cfg != nil {
		return cfg.Source.Base
	}
	return ""
}

// Variant returns the variant name.
// Priority: --variant flag > CODEFIND_VARIANT > source.variant > default.
func Variant(cfg *config.Config) string {
	if variantName != "" {
		return variantName
	}
	if v := os.Getenv(EnvVariant); v != "" {
		return v
	}
	if cfg != nil && cfg.Source.Variant != "" {
		return cfg.Source.Variant
	}
	return variant.Default
}

// Manifest returns the manifest override, empty for the variant's own.
func Manifest(cfg *config.Config) string {
	if manifest != "" {
		return manifest
	}
	if cfg != nil {
		return cfg.Source.Manifest
	}
	return ""
}

// Lang returns the active language. --lang must name a supported language;
// a saved preference is used only if supported, then the locale decides.
func Lang(cfg *config.Config) (string, error) {
	if lang != "" {
		if err := i18n.Validate(lang); err != nil {
			return "", err
		}
		return lang, nil
	}
	saved := ""
	if cfg != nil {
		saved = cfg.Lang()
	}
	return i18n.Initial(saved, i18n.FromEnv()), nil
}

// Concurrent reports whether bodies are fetched with the worker pool.
func Concurrent(cfg *config.Config) bool {
	return concurrent || (cfg != nil && cfg.Concurrent())
}

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if the error was printed (suppressing cobra's copy), or the
// original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&output, "output", "o", "", "Output format: json")
	pf.StringVarP(&source, "source", "s", "", "Catalog base URL or directory (env "+EnvSource+")")
	pf.StringVar(&variantName, "variant", "", fmt.Sprintf("Catalog variant %v (env %s)", variant.Names(), EnvVariant))
	pf.StringVar(&manifest, "manifest", "", "Manifest file, overriding the variant's default")
	pf.StringVar(&lang, "lang", "", fmt.Sprintf("Message language %v", i18n.Supported))
	pf.BoolVar(&concurrent, "concurrent", false, "Fetch entry bodies in parallel")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("variant", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return variant.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("lang", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return i18n.Supported, cobra.ShellCompDirectiveNoFileComp
	})
}
