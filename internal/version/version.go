// Package version provides build version information for codefind.
// Variables are set at build time via ldflags:
//
//	go build -ldflags="-X github.com/jpl-au/codefind/internal/version.Version=v1.0.0 \
//	  -X github.com/jpl-au/codefind/internal/version.GitCommit=abc123 \
//	  -X github.com/jpl-au/codefind/internal/version.BuildTime=2026-01-15T10:30:00Z"
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/jpl-au/codefind/internal/i18n"
	"github.com/jpl-au/codefind/internal/variant"
)

// Build information. Set via ldflags at build time.
var (
	Version   = "dev"     // Version tag (e.g., "v1.0.0")
	GitCommit = "unknown" // Short git commit hash
	BuildTime = "unknown" // RFC3339 build timestamp
)

// Info holds structured version information.
type Info struct {
	BuildTag  string `json:"build_tag"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"` // e.g. "darwin arm64"

	// What this build can browse and speak.
	Variants  []string `json:"variants"`
	Languages []string `json:"languages"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		BuildTag:  Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH),
		Variants:  variant.Names(),
		Languages: append([]string(nil), i18n.Supported...),
	}
}

// String returns a formatted version string suitable for display.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Build Tag:    %s\n", i.BuildTag)
	fmt.Fprintf(&b, "Build Time:   %s\n", i.BuildTime)
	fmt.Fprintf(&b, "Go Version:   %s\n", i.GoVersion)
	fmt.Fprintf(&b, "Platform:     %s\n", i.Platform)
	fmt.Fprintf(&b, "Git Commit:   %s\n", i.GitCommit)
	fmt.Fprintf(&b, "Variants:     %s\n", strings.Join(i.Variants, ", "))
	fmt.Fprintf(&b, "Languages:    %s\n", strings.Join(i.Languages, ", "))
	return b.String()
}

// Short returns just the version tag (e.g. "v1.0.0" or "dev"). The MCP
// server advertises it to clients.
func Short() string {
	return Version
}
