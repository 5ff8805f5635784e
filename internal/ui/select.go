package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// selectKeyMap defines the keybindings for the branch selector.
type selectKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	All    key.Binding
	None   key.Binding
	Filter key.Binding
	Accept key.Binding
	Cancel key.Binding
}

func defaultSelectKeys() selectKeyMap {
	return selectKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		All:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		None:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "select none")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k selectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.All, k.None, k.Filter, k.Accept, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k selectKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.All, k.None, k.Filter},
		{k.Accept, k.Cancel},
	}
}

// selectModel is the bubbletea model for interactively narrowing the plan.
// All branches start selected; the user deselects what should stay.
type selectModel struct {
	branches []string
	selected map[string]bool

	visible   []int // indexes into branches, in display order
	cursor    int
	filtering bool
	filter    textinput.Model

	keys selectKeyMap
	help help.Model

	accepted  bool
	cancelled bool
}

func newSelectModel(branches []string) selectModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "/ "

	selected := make(map[string]bool, len(branches))
	visible := make([]int, len(branches))
	for i, b := range branches {
		selected[b] = true
		visible[i] = i
	}

	return selectModel{
		branches: branches,
		selected: selected,
		visible:  visible,
		filter:   ti,
		keys:     defaultSelectKeys(),
		help:     help.New(),
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtering {
		switch keyMsg.String() {
		case "enter", "esc":
			m.filtering = false
			m.filter.Blur()
			return m, nil
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter()
			return m, cmd
		}
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if len(m.visible) > 0 {
			name := m.branches[m.visible[m.cursor]]
			m.selected[name] = !m.selected[name]
		}
	case key.Matches(keyMsg, m.keys.All):
		for _, i := range m.visible {
			m.selected[m.branches[i]] = true
		}
	case key.Matches(keyMsg, m.keys.None):
		for _, i := range m.visible {
			m.selected[m.branches[i]] = false
		}
	case key.Matches(keyMsg, m.keys.Filter):
		m.filtering = true
		m.filter.Focus()
	case key.Matches(keyMsg, m.keys.Accept):
		m.accepted = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

// applyFilter recomputes the visible list from the filter text, ranked by
// fuzzy match score. An empty filter shows everything in original order.
func (m *selectModel) applyFilter() {
	query := m.filter.Value()
	if query == "" {
		m.visible = make([]int, len(m.branches))
		for i := range m.branches {
			m.visible[i] = i
		}
	} else {
		matches := fuzzy.Find(query, m.branches)
		m.visible = make([]int, len(matches))
		for i, match := range matches {
			m.visible[i] = match.Index
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
}

func (m selectModel) View() string {
	if m.accepted || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(boldStyle.Render("Select branches to delete") + "\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View() + "\n")
	}

	for pos, i := range m.visible {
		cursor := "  "
		if pos == m.cursor {
			cursor = accentStyle.Render("❯ ")
		}
		check := "[ ]"
		if m.selected[m.branches[i]] {
			check = successStyle.Render("[x]")
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, check, m.branches[i])
	}
	if len(m.visible) == 0 {
		b.WriteString(mutedStyle.Render("  no branches match") + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

// chosen returns the selected branches in their original order.
func (m selectModel) chosen() []string {
	var out []string
	for _, name := range m.branches {
		if m.selected[name] {
			out = append(out, name)
		}
	}
	return out
}

// SelectBranches runs the interactive selector over the given branches.
// Returns the chosen subset in original order, and whether the user
// cancelled the run entirely.
func SelectBranches(branches []string) (selected []string, cancelled bool, err error) {
	p := tea.NewProgram(newSelectModel(branches))
	final, err := p.Run()
	if err != nil {
		return nil, false, fmt.Errorf("interactive selection: %w", err)
	}
	m := final.(selectModel)
	if m.cancelled {
		return nil, true, nil
	}
	return m.chosen(), false, nil
}
