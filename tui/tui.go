// Package tui provides an interactive preview of style sheet entries.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/decor-cli/decor/color"
	"github.com/decor-cli/decor/icon"
	"github.com/decor-cli/decor/log"
	"github.com/decor-cli/decor/modifier"
	"github.com/decor-cli/decor/sheet"
	"github.com/samber/lo"
)

// Options encapsulates the runtime configuration for the preview.
type Options struct {
	Sheet *sheet.Sheet
	Style string
	Text  string
	Mouse bool
}

// Run starts the preview.
func Run(options *Options) error {
	m, err := newModel(options)
	if err != nil {
		return err
	}

	programOptions := []tea.ProgramOption{tea.WithAltScreen()}
	if options.Mouse {
		programOptions = append(programOptions, tea.WithMouseCellMotion())
	}

	_, err = tea.NewProgram(m, programOptions...).Run()
	return err
}

// boxTop is the row the previewed element starts on: a title line, then a blank line.
const boxTop = 2

// chrome is the number of rows used around the element: title, blank, blank, status, help.
const chrome = 5

type model struct {
	sheet  *sheet.Sheet
	names  []string
	index  int
	text   string
	frame  modifier.Frame
	clicks map[string]int
	chain  modifier.Chain

	keymap keymap
	help   help.Model
}

func newModel(options *Options) (*model, error) {
	if options.Sheet == nil || options.Sheet.Len() == 0 {
		return nil, errors.New("style sheet has no styles to preview")
	}

	m := &model{
		sheet:  options.Sheet,
		names:  options.Sheet.Names(),
		text:   options.Text,
		clicks: make(map[string]int),
		keymap: newKeymap(),
		help:   help.New(),
	}

	if options.Style != "" {
		index := lo.IndexOf(m.names, options.Style)
		if index < 0 {
			return nil, fmt.Errorf("unknown style %q, did you mean %q?", options.Style, m.sheet.Suggest(options.Style))
		}
		m.index = index
	}

	m.rebuild()
	return m, nil
}

func (m *model) current() string {
	return m.names[m.index]
}

// rebuild resolves the current style with a click handler counting activations.
func (m *model) rebuild() {
	name := m.current()
	flat, _ := m.sheet.Flat(name)
	flat.OnClick = func() {
		m.clicks[name]++
		log.Debugf("preview: %s clicked %d times", name, m.clicks[name])
	}
	m.chain = flat.Build()
}

func (m *model) element() string {
	return m.chain.Render(m.frame, m.text)
}

// hit reports whether the cell at x, y lies on the rendered element.
func (m *model) hit(x, y int) bool {
	el := m.element()
	return x >= 0 && x < lipgloss.Width(el) && y >= boxTop && y < boxTop+lipgloss.Height(el)
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.frame = modifier.Frame{Width: msg.Width, Height: max(msg.Height-chrome, 0)}
		m.help.Width = msg.Width
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft && m.hit(msg.X, msg.Y) {
			m.chain.Click()
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.next):
			m.index = (m.index + 1) % len(m.names)
			m.rebuild()
		case key.Matches(msg, m.keymap.prev):
			m.index = (m.index - 1 + len(m.names)) % len(m.names)
			m.rebuild()
		case key.Matches(msg, m.keymap.click):
			m.chain.Click()
		}
	}

	return m, nil
}

func (m *model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s %s", icon.Get(icon.Style), m.current())
	b.WriteString(color.Bold(title))
	b.WriteString(color.Faint(fmt.Sprintf("  %d/%d", m.index+1, len(m.names))))
	b.WriteString("\n\n")

	b.WriteString(m.element())
	b.WriteString("\n\n")

	b.WriteString(color.Faint(fmt.Sprintf("%s %d clicks  %s", icon.Get(icon.Click), m.clicks[m.current()], m.chain)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))

	return b.String()
}
