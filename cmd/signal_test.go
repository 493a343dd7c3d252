package cmd

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterruptCancelsLoad(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("os.Interrupt cannot be sent to a process on windows")
	}
	env := newTestEnv(t)

	requested := make(chan struct{}, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case requested <- struct{}{}:
		default:
		}
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	var out bytes.Buffer
	c := exec.Command(env.binary, "ls", "--source", srv.URL+"/")
	c.Dir = env.dir
	c.Env = env.environ
	c.Stdout = &out
	c.Stderr = &out
	require.NoError(t, c.Start())

	select {
	case <-requested:
	case <-time.After(10 * time.Second):
		_ = c.Process.Kill()
		t.Fatal("manifest was never requested")
	}
	require.NoError(t, c.Process.Signal(os.Interrupt))

	done := make(chan error, 1)
	go func() { done <- c.Wait() }()
	var err error
	select {
	case err = <-done:
	case <-time.After(10 * time.Second):
		_ = c.Process.Kill()
		t.Fatal("codefind did not stop after interrupt")
	}

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "want exit error, got %v", err)
	assert.Equal(t, 1, exitErr.ExitCode(), "interrupt should fail the command, not kill the process")
	assert.Contains(t, out.String(), "Error loading the entry list.")
	assert.Contains(t, out.String(), "context canceled")
}
