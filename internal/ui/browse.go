package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
)

// listItem adapts a positioned Todo to bubbles/list.Item
type listItem struct {
	pos  int
	todo model.Todo
}

func (i listItem) Title() string       { return fmt.Sprintf("%d. %s", i.pos, i.todo.Title) }
func (i listItem) Description() string { return i.todo.Description }
func (i listItem) FilterValue() string { return i.todo.Title + " " + i.todo.Description }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := Current()
	box := t.style(t.Muted).Render(t.BoxUnchecked)
	text := it.Title() + " - " + it.Description()
	if it.todo.Completed {
		box = t.style(t.Success).Render(t.BoxChecked)
		text = lipgloss.NewStyle().Faint(true).Strikethrough(true).Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = lipgloss.NewStyle().Bold(true).Reverse(true).Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}

// browseModel is a read-only view of the list; it never writes back.
type browseModel struct {
	list list.Model
}

var backBind = key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "back to menu"))

func newBrowseModel(todos []model.Todo) browseModel {
	items := make([]list.Item, 0, len(todos))
	done := 0
	for i, td := range todos {
		items = append(items, listItem{pos: i + 1, todo: td})
		if td.Completed {
			done++
		}
	}

	l := list.New(items, itemDelegate{}, 80, 20)
	l.Title = Header(done, len(todos)-done)
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("todo", "todos")
	l.FilterInput.Prompt = "/ "
	l.Styles.Title = lipgloss.NewStyle()
	l.Styles.HelpStyle = lipgloss.NewStyle().Faint(true)
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{backBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{backBind} }

	return browseModel{list: l}
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-2)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// q and esc belong to the filter input while it is focused.
		if m.list.FilterState() != list.Filtering && key.Matches(msg, backBind) {
			if msg.String() == "esc" && m.list.FilterState() == list.FilterApplied {
				break
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	return panelString(m.list.View())
}

func panelString(inner string) string {
	return lipgloss.NewStyle().
		Border(Current().Border).
		BorderForeground(Current().Muted).
		Padding(0, 1).
		Render(inner)
}

// Browse runs the read-only list browser until the user goes back.
func Browse(todos []model.Todo, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(newBrowseModel(todos),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}
