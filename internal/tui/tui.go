// Package tui implements the interactive catalog browser.
//
// Entries stream in while the catalog loads; the search box is attached
// once loading ends and filters on every keystroke. Content entries expand
// to show their body and can be copied to the clipboard; link entries show
// where they point.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jpl-au/codefind/internal/catalog"
	"github.com/jpl-au/codefind/internal/filter"
	"github.com/jpl-au/codefind/internal/i18n"
	"github.com/jpl-au/codefind/internal/item"
	"github.com/jpl-au/codefind/internal/service"
)

// copiedFor is how long copy feedback stays on screen.
const copiedFor = 1500 * time.Millisecond

// Lines taken by the header (title, subtitle, input, blank) and footer.
const (
	headerLines = 4
	footerLines = 2
)

// Clipboard receives copied code.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Options configures the browser.
type Options struct {
	Clipboard Clipboard               // system clipboard when nil
	SaveLang  func(code string) error // persists a language switch; nil to skip
}

type (
	itemMsg struct {
		index int
		item  item.Item
	}
	loadedMsg      struct{ err error }
	copiedMsg      struct{ err error }
	clearStatusMsg struct{ seq int }
	langSavedMsg   struct{ err error }
)

// Model is the browser state.
type Model struct {
	ctx    context.Context
	svc    service.Service
	msg    *i18n.Localizer
	opts   Options
	keys   KeyMap
	input  textinput.Model
	view   viewport.Model
	events chan tea.Msg

	items    []item.Item
	visible  []bool
	expanded map[int]bool
	cursor   int // index into items, -1 when nothing is visible
	loaded   bool
	loadErr  error

	status    string
	statusErr bool
	statusSeq int
}

// New creates the browser model. An already loaded catalog is shown at
// once; otherwise Init starts the load.
func New(ctx context.Context, svc service.Service, msg *i18n.Localizer, opts Options) Model {
	if msg == nil {
		msg = i18n.New(i18n.Default)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = systemClipboard{}
	}

	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = msg.T(i18n.SearchPlaceholder)

	m := Model{
		ctx:      ctx,
		svc:      svc,
		msg:      msg,
		opts:     opts,
		keys:     DefaultKeyMap(),
		input:    in,
		view:     viewport.New(80, 20),
		events:   make(chan tea.Msg),
		expanded: make(map[int]bool),
		cursor:   -1,
	}
	if svc.Loaded() {
		m.items = svc.Items()
		m.loaded = true
		m.input.Focus()
		m.applyFilter()
	}
	m.refresh()
	return m
}

// Init starts loading the catalog unless it is already loaded.
func (m Model) Init() tea.Cmd {
	if m.loaded {
		return textinput.Blink
	}
	return tea.Batch(m.load(), m.wait())
}

// load runs the catalog load and forwards each entry as it arrives.
func (m Model) load() tea.Cmd {
	ctx, ch, svc := m.ctx, m.events, m.svc
	send := func(msg tea.Msg) {
		select {
		case ch <- msg:
		case <-ctx.Done():
		}
	}
	return func() tea.Msg {
		err := svc.Load(ctx, catalog.WithItem(func(i int, it item.Item) {
			send(itemMsg{index: i, item: it})
		}))
		send(loadedMsg{err: err})
		return nil
	}
}

func (m Model) wait() tea.Cmd {
	ch, ctx := m.events, m.ctx
	return func() tea.Msg {
		select {
		case msg := <-ch:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = max(msg.Height-headerLines-footerLines, 3)
		m.input.Width = max(msg.Width-4, 10)
		m.refresh()
		return m, nil

	case itemMsg:
		m.items = append(m.items, msg.item)
		m.visible = append(m.visible, true)
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.refresh()
		return m, m.wait()

	case loadedMsg:
		m.loaded = true
		m.loadErr = msg.err
		m.applyFilter()
		m.refresh()
		return m, m.input.Focus()

	case copiedMsg:
		if msg.err != nil {
			return m.setStatus(m.msg.T(i18n.CopyFailed), true)
		}
		return m.setStatus(m.msg.T(i18n.Copied), false)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case langSavedMsg:
		if msg.err != nil {
			return m.setStatus(msg.err.Error(), true)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	// Input is attached once loading has finished.
	if !m.loaded || m.loadErr != nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.PageUp):
		m.move(-m.view.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.move(m.view.Height)
	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.current(); ok && it.HasContent {
			m.expanded[m.cursor] = !m.expanded[m.cursor]
		}
	case key.Matches(msg, m.keys.Copy):
		if it, ok := m.current(); ok && it.HasContent {
			return m, m.copy(it.Content)
		}
		return m, nil
	case key.Matches(msg, m.keys.Language):
		return m, m.switchLanguage()
	default:
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.applyFilter()
		}
		m.refresh()
		return m, cmd
	}
	m.refresh()
	return m, nil
}

func (m Model) setStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.status = text
	m.statusErr = isErr
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(copiedFor, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m Model) copy(text string) tea.Cmd {
	cb := m.opts.Clipboard
	return func() tea.Msg {
		return copiedMsg{err: cb.WriteAll(text)}
	}
}

// switchLanguage moves to the next language, re-applies the current query
// and saves the choice.
func (m *Model) switchLanguage() tea.Cmd {
	code := i18n.Next(m.msg.Lang())
	m.msg = i18n.New(code)
	m.input.Placeholder = m.msg.T(i18n.SearchPlaceholder)
	m.applyFilter()
	m.refresh()

	save := m.opts.SaveLang
	if save == nil {
		return nil
	}
	return func() tea.Msg {
		return langSavedMsg{err: save(code)}
	}
}

// applyFilter recomputes visibility and keeps the cursor on a visible entry.
func (m *Model) applyFilter() {
	m.visible = filter.Visible(m.items, m.input.Value(), m.svc.Variant().Fields)
	if m.cursor >= 0 && m.cursor < len(m.visible) && m.visible[m.cursor] {
		return
	}
	m.cursor = -1
	for i, v := range m.visible {
		if v {
			m.cursor = i
			return
		}
	}
}

// move shifts the cursor by n visible entries, stopping at either end.
func (m *Model) move(n int) {
	if m.cursor < 0 {
		return
	}
	step := 1
	if n < 0 {
		step, n = -1, -n
	}
	for i := m.cursor + step; n > 0 && i >= 0 && i < len(m.items); i += step {
		if m.visible[i] {
			m.cursor = i
			n--
		}
	}
}

func (m Model) current() (item.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return item.Item{}, false
	}
	return m.items[m.cursor], true
}

func (m Model) visibleCount() int {
	n := 0
	for _, v := range m.visible {
		if v {
			n++
		}
	}
	return n
}

// refresh rebuilds the list and scrolls so the cursor stays in view.
func (m *Model) refresh() {
	body, cursorLine := m.renderList()
	m.view.SetContent(body)
	if cursorLine < 0 {
		m.view.SetYOffset(0)
		return
	}
	if cursorLine < m.view.YOffset {
		m.view.SetYOffset(cursorLine)
	} else if cursorLine >= m.view.YOffset+m.view.Height {
		m.view.SetYOffset(cursorLine - m.view.Height + 1)
	}
}

func (m Model) renderList() (string, int) {
	if m.loadErr != nil {
		return errorStyle.Render(m.msg.T(i18n.ErrorLoading)), -1
	}
	if !m.loaded && len(m.items) == 0 {
		return messageStyle.Render(m.msg.T(i18n.Loading) + "..."), -1
	}
	if m.loaded {
		state := filter.Outcome(len(m.items), m.visibleCount(), m.input.Value())
		if state != filter.StateResults {
			return messageStyle.Render(m.msg.Outcome(state, m.input.Value())), -1
		}
	}

	var b strings.Builder
	lines, cursorLine := 0, -1
	for i, it := range m.items {
		if i < len(m.visible) && !m.visible[i] {
			continue
		}
		row := m.svc.Title(it)
		switch {
		case m.svc.Variant().Links:
			row += "  " + linkStyle.Render(m.svc.Resolve(it))
		case it.HasContent && m.expanded[i]:
			row = "▾ " + row
		case it.HasContent:
			row = "▸ " + row
		}
		if i == m.cursor {
			cursorLine = lines
			row = cursorStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row + "\n")
		lines++

		if it.HasContent && m.expanded[i] {
			block := buttonStyle.Render("["+m.msg.T(i18n.CopyCode)+"]") + "\n" +
				codeStyle.Render(strings.TrimRight(it.Content, "\n"))
			for _, l := range strings.Split(block, "\n") {
				b.WriteString("    " + l + "\n")
				lines++
			}
		}
	}
	return b.String(), cursorLine
}

// View renders the browser.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.msg.T(i18n.Title)))
	b.WriteString("  " + subtitleStyle.Render(m.msg.T(i18n.LanguageLabel)+": "+i18n.Name(m.msg.Lang())) + "\n")
	b.WriteString(subtitleStyle.Render(m.msg.T(i18n.Subtitle)) + "\n")
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(m.view.View() + "\n")
	switch {
	case m.status != "" && m.statusErr:
		b.WriteString(errorStyle.Render(m.status))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	default:
		b.WriteString(helpStyle.Render(m.msg.T(i18n.HelpKeys)))
	}
	return b.String()
}

// Lang returns the active language code.
func (m Model) Lang() string { return m.msg.Lang() }

// Visible returns one flag per entry for the current query.
func (m Model) Visible() []bool { return append([]bool(nil), m.visible...) }

// Query returns the current search text.
func (m Model) Query() string { return m.input.Value() }

// Err returns the load failure, if any.
func (m Model) Err() error { return m.loadErr }

// Run shows the browser until the user quits. A manifest failure is shown
// in the browser and returned once it closes.
func Run(ctx context.Context, svc service.Service, msg *i18n.Localizer, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	final, err := tea.NewProgram(New(ctx, svc, msg, opts), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
