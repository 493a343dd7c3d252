// flags.go defines constants for CLI flag names shared between flag
// definitions and lookups.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "line-numbers" -> FlagLineNumbers).

package extension

const (
	// Boolean flags

	FlagContent = "content" // Include bodies in JSON output
	FlagLinks   = "links"   // Title followed by link target
	FlagLocal   = "local"   // Use local scope
	FlagLong    = "long"    // Long format output
	FlagNames   = "names"   // Raw names only
	FlagNumber  = "number"  // Number output lines
	FlagRaw     = "raw"     // Raw output without rendering

	// String flags

	FlagLines = "lines" // Line range (e.g., "10:20")
	FlagStyle = "style" // glamour style for rendered output
)
