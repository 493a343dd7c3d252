package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_TTY(t *testing.T) {
	var buf bytes.Buffer
	p := NewTo(&buf, "Loading", 10, true)
	for range 3 {
		p.Increment()
	}
	p.Print()
	assert.Equal(t, 3, p.Current())
	assert.Contains(t, buf.String(), "Loading... 3/10 (30%)")

	buf.Reset()
	p.Done()
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\r ")))
}

func TestProgress_SilentWhenNotTTY(t *testing.T) {
	var buf bytes.Buffer
	p := NewTo(&buf, "Loading", 10, false)
	p.Increment()
	p.Print()
	p.Done()
	assert.Empty(t, buf.String())
}

func TestProgress_SilentForSmallBatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewTo(&buf, "Loading", minItems-1, true)
	p.Increment()
	p.Print()
	p.Done()
	assert.Empty(t, buf.String())
}

func TestSpinner(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinnerTo(&buf, "codes.txt", true)
	s.Start()
	s.Tick()
	s.Stop()
	assert.Contains(t, buf.String(), "codes.txt...")

	buf.Reset()
	s.Tick()
	assert.Empty(t, buf.String(), "stopped spinner does not draw")
}
