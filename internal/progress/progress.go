// Package progress draws load progress on stderr. Stdout stays clean for
// piping, and nothing is drawn unless stderr is a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// minItems is the smallest batch worth a progress line.
const minItems = 5

// Progress counts completed entries out of a known total. It satisfies
// content.Reporter.
type Progress struct {
	mu      sync.Mutex
	w       io.Writer
	label   string
	total   int
	current int
	isTTY   bool
	width   int
}

// New creates a progress reporter on stderr.
func New(label string, total int) *Progress {
	return NewTo(os.Stderr, label, total, term.IsTerminal(int(os.Stderr.Fd())))
}

// NewTo creates a progress reporter on w. tty controls whether anything is drawn.
func NewTo(w io.Writer, label string, total int, tty bool) *Progress {
	return &Progress{w: w, label: label, total: total, isTTY: tty}
}

// Increment advances the counter by one.
func (p *Progress) Increment() {
	p.mu.Lock()
	p.current++
	p.mu.Unlock()
}

// Current returns the number of completed entries.
func (p *Progress) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Print redraws the progress line in place.
func (p *Progress) Print() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.isTTY || p.total < minItems {
		return
	}
	line := fmt.Sprintf("%s... %d/%d (%d%%)", p.label, p.current, p.total, p.current*100/p.total)
	p.width = max(p.width, len(line))
	fmt.Fprintf(p.w, "\r%s", line)
}

// Done clears the progress line.
func (p *Progress) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.isTTY || p.width == 0 {
		return
	}
	fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", p.width))
	p.width = 0
}

// Spinner shows that the manifest request is in flight.
type Spinner struct {
	w       io.Writer
	label   string
	frame   int
	isTTY   bool
	frames  []string
	running bool
}

// NewSpinner creates a spinner on stderr.
func NewSpinner(label string) *Spinner {
	return NewSpinnerTo(os.Stderr, label, term.IsTerminal(int(os.Stderr.Fd())))
}

// NewSpinnerTo creates a spinner on w.
func NewSpinnerTo(w io.Writer, label string, tty bool) *Spinner {
	return &Spinner{
		w:      w,
		label:  label,
		isTTY:  tty,
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start displays the spinner.
func (s *Spinner) Start() {
	if !s.isTTY {
		return
	}
	s.running = true
	fmt.Fprintf(s.w, "%s %s...", s.frames[0], s.label)
}

// Tick advances the animation by one frame.
func (s *Spinner) Tick() {
	if !s.isTTY || !s.running {
		return
	}
	s.frame = (s.frame + 1) % len(s.frames)
	fmt.Fprintf(s.w, "\r%s %s...", s.frames[s.frame], s.label)
}

// Stop clears the spinner line.
func (s *Spinner) Stop() {
	if !s.isTTY || !s.running {
		return
	}
	s.running = false
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.label)+6))
}
