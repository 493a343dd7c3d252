// Package all imports all built-in codefind extensions.
// Import this package to register every command.
package all

import (
	// Each registers itself via init()
	_ "github.com/jpl-au/codefind/extension/browse"
	_ "github.com/jpl-au/codefind/extension/catalog"
	_ "github.com/jpl-au/codefind/extension/core"
)
