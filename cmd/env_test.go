// The cmd tests build the binary once and drive it as a user would, against
// a catalog written into a temporary directory. HOME is redirected so
// config and the audit log never touch the real user's files.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the codefind binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "codefind-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "codefind"
		if os.PathSeparator == '\\' {
			binaryName = "codefind.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		projectRoot := filepath.Dir(mustGetwd())

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// Catalog fixture shared by every test. One snippet body is missing on
// purpose.
var fixture = map[string]string{
	"code_modul.txt":  "Card Layout\nButton\nMissing One\nHTTP Client\n",
	"Card_Layout.txt": "<div class=\"card\">\n  <p>Hello</p>\n</div>\n",
	"Button.txt":      "<button>Go</button>\n",
	"HTTP_Client.txt": "resp, err := http.Get(url)\nif err != nil {\n\treturn err\n}\n",
	"codes.txt":       "get-http-client.html\njson_parser.html\n",
	"APP_ID.txt":      "Main App\nadmin-tool\n",
}

// testEnv holds test environment state.
type testEnv struct {
	t       *testing.T
	dir     string // working directory
	home    string
	source  string // catalog directory
	binary  string
	environ []string
}

// newTestEnv creates a working directory, a private HOME and a catalog.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	e := &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		source: t.TempDir(),
		binary: buildBinary(t),
	}
	for name, body := range fixture {
		if err := os.WriteFile(filepath.Join(e.source, name), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}

	for _, kv := range os.Environ() {
		k, _, _ := strings.Cut(kv, "=")
		switch k {
		case "HOME", "USERPROFILE", "LANG", "LC_ALL", "LC_MESSAGES", EnvSource, EnvVariant:
			continue
		}
		e.environ = append(e.environ, kv)
	}
	e.environ = append(e.environ,
		"HOME="+e.home,
		"USERPROFILE="+e.home,
		"LANG=C",
		EnvSource+"="+e.source,
	)
	return e
}

// setenv adds or replaces an environment variable for later runs.
func (e *testEnv) setenv(key, value string) {
	prefix := key + "="
	for i, kv := range e.environ {
		if strings.HasPrefix(kv, prefix) {
			e.environ[i] = prefix + value
			return
		}
	}
	e.environ = append(e.environ, prefix+value)
}

// run executes codefind with the given args and returns its output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("codefind %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes codefind and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = e.environ
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// notContains checks that output lacks a string.
func (e *testEnv) notContains(output, unexpected string) {
	e.t.Helper()
	assert.NotContains(e.t, output, unexpected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}

// writeSourceFile adds a file to the catalog directory.
func writeSourceFile(t *testing.T, e *testEnv, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(e.source, name), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}
