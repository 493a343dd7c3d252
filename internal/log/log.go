// Package log records an audit trail of codefind commands and MCP tool calls
// in ~/.codefind/log/codefind-log.db.
//
// # Fluent API
//
//	log.Event("catalog:find", "search").
//		Variant(svc.Variant().Name).
//		Detail("query", query).
//		Count(len(matches)).
//		Write(err)
//
// The source is "{extension}:{command}" for CLI commands or "mcp:{tool}" for
// MCP tools. Logging is best-effort: nothing is recorded until Open succeeds
// and a failed write never fails the command.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source   string // e.g. "catalog:cat", "mcp:codefind_read"
	Action   string // list, search, read, diff, browse, copy, config
	Variant  string // catalog variant in use
	Item     string // item name requested, if any
	Resolved string // resource the item resolved to
	Count    int    // number of items returned

	Start int64 // unix millis when Event() called
	End   int64 // unix millis when Write() called

	Success bool
	Error   string
	Detail  map[string]any
}

// Builder constructs a log entry. Create with [Event], chain setters, then
// call [Builder.Write].
type Builder struct {
	entry Entry
}

// Event starts an entry for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().UnixMilli(),
		},
	}
}

// Variant sets the catalog variant.
func (b *Builder) Variant(name string) *Builder {
	b.entry.Variant = name
	return b
}

// Item sets the item this operation targets.
func (b *Builder) Item(name string) *Builder {
	b.entry.Item = name
	return b
}

// Resolved sets the resource an item resolved to, such as the content
// file or link target.
func (b *Builder) Resolved(ref string) *Builder {
	b.entry.Resolved = ref
	return b
}

// Count sets how many items the operation returned.
func (b *Builder) Count(n int) *Builder {
	b.entry.Count = n
	return b
}

// Detail adds a key-value pair. Use for data that has no field of its own:
// queries, language codes, glob patterns.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write records the entry, deriving success from err.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().UnixMilli()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent entries. The base
// is the catalog source (URL or directory).
func SetProject(base string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(base)
	}
}

// Log writes an entry. No-op if the logger is not open.
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
