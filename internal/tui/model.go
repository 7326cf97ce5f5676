// Package tui is the interactive terminal page: a URL input, a submit control and
// one card per generated outreach draft.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jonathan/pitchkraft/internal/present"
	"github.com/jonathan/pitchkraft/internal/workflow"
)

const (
	inputPlaceholder = "Paste Job URL (e.g. Lever, Greenhouse, LinkedIn)"
	defaultWidth     = 100
	editorHeight     = 12
)

// settledMsg carries the outcome of the request started by a submit.
type settledMsg struct {
	settlement workflow.Settlement
}

// Options configures the side effects of the page.
type Options struct {
	Clipboard Clipboard
	Opener    Opener
}

// Model is the bubbletea model of one page session.
type Model struct {
	ctx       context.Context
	ctrl      *workflow.Controller
	clipboard Clipboard
	opener    Opener

	input   textinput.Model
	spinner spinner.Model
	view    present.View
	editors []textarea.Model
	drafts  *present.Drafts
	links   map[int]int // selected link per card index

	focus  int // 0 is the URL input, i+1 is card i
	width  int
	styles styles
}

// New creates the page around ctrl. Nil effects fall back to the system clipboard and browser.
func New(ctx context.Context, ctrl *workflow.Controller, opts Options) *Model {
	if opts.Clipboard == nil {
		opts.Clipboard = SystemClipboard()
	}
	if opts.Opener == nil {
		opts.Opener = SystemBrowser()
	}

	input := textinput.New()
	input.Placeholder = inputPlaceholder
	input.Prompt = "URL: "
	input.SetValue(ctrl.Input())
	input.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := &Model{
		ctx:       ctx,
		ctrl:      ctrl,
		clipboard: opts.Clipboard,
		opener:    opts.Opener,
		input:     input,
		spinner:   sp,
		drafts:    present.NewDrafts(),
		links:     make(map[int]int),
		width:     defaultWidth,
		styles:    defaultStyles(),
	}
	m.view = present.Render(ctrl.State())
	m.input.Width = m.inputWidth()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = m.inputWidth()
		for i := range m.editors {
			m.editors[i].SetWidth(m.editorWidth())
		}
		return m, nil

	case settledMsg:
		if m.ctrl.Settle(msg.settlement) {
			m.refresh()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.view.Busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.setFocus((m.focus + 1) % (len(m.editors) + 1))
		return m, nil
	case "shift+tab":
		m.setFocus((m.focus + len(m.editors)) % (len(m.editors) + 1))
		return m, nil
	case "enter":
		if m.focus == 0 {
			return m, m.submit()
		}
	case "ctrl+y":
		if card, ok := m.focusedCard(); ok {
			return m, m.copyEmail(card)
		}
		return m, nil
	case "ctrl+o":
		if card, ok := m.focusedCard(); ok {
			return m, m.openLink(card)
		}
		return m, nil
	case "alt+n", "alt+p":
		if card, ok := m.focusedCard(); ok && len(card.Links) > 0 {
			step := 1
			if msg.String() == "alt+p" {
				step = len(card.Links) - 1
			}
			m.links[card.Index] = (m.links[card.Index] + step) % len(card.Links)
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.input, cmd = m.input.Update(msg)
		m.ctrl.SetInput(m.input.Value())
		return m, cmd
	}

	i := m.focus - 1
	before := m.editors[i].Value()
	m.editors[i], cmd = m.editors[i].Update(msg)
	if after := m.editors[i].Value(); after != before {
		m.drafts.Set(i, after)
	}
	return m, cmd
}

// submit starts a request unless one is already in flight.
func (m *Model) submit() tea.Cmd {
	req, err := m.ctrl.Submit()
	if err != nil {
		return nil
	}
	m.refresh()

	ctx, ctrl := m.ctx, m.ctrl
	execute := func() tea.Msg {
		return settledMsg{settlement: ctrl.Execute(ctx, req)}
	}
	return tea.Batch(m.spinner.Tick, execute)
}

// copyEmail puts the card's original email on the clipboard; failures are not reported.
func (m *Model) copyEmail(card present.Card) tea.Cmd {
	text := m.drafts.CopyText(card)
	cb := m.clipboard
	return func() tea.Msg {
		_ = cb.WriteAll(text)
		return nil
	}
}

// openLink opens the card's selected link; failures are not reported.
func (m *Model) openLink(card present.Card) tea.Cmd {
	if len(card.Links) == 0 {
		return nil
	}
	url := card.Links[m.links[card.Index]].URL
	opener := m.opener
	return func() tea.Msg {
		_ = opener.OpenURL(url)
		return nil
	}
}

// refresh re-renders the view from controller state and rebuilds the card editors
// whenever the result set changes.
func (m *Model) refresh() {
	m.view = present.Render(m.ctrl.State())

	m.drafts.Reset()
	m.links = make(map[int]int)
	m.editors = make([]textarea.Model, len(m.view.Cards))
	for i, card := range m.view.Cards {
		ta := textarea.New()
		ta.ShowLineNumbers = false
		ta.CharLimit = 0
		ta.SetWidth(m.editorWidth())
		ta.SetHeight(editorHeight)
		ta.SetValue(card.Email)
		ta.Blur()
		m.editors[i] = ta
	}
	if m.focus > len(m.editors) {
		m.setFocus(0)
	}
}

func (m *Model) setFocus(focus int) {
	m.focus = focus
	if focus == 0 {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	for i := range m.editors {
		if i == focus-1 {
			m.editors[i].Focus()
		} else {
			m.editors[i].Blur()
		}
	}
}

func (m *Model) focusedCard() (present.Card, bool) {
	if m.focus == 0 || m.focus > len(m.view.Cards) {
		return present.Card{}, false
	}
	return m.view.Cards[m.focus-1], true
}

func (m *Model) inputWidth() int {
	return max(20, m.width-30)
}

func (m *Model) editorWidth() int {
	return max(30, m.width/2-6)
}
