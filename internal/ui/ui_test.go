package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	qt "github.com/frankban/quicktest"

	"github.com/Makepad-fr/tada/internal/model"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestProgressBar(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name        string
		done, total int
		width       int
		want        string
	}{
		{name: "empty", done: 0, total: 0, width: 10, want: "░░░░░░░░░░   0%"},
		{name: "half", done: 1, total: 2, width: 10, want: "█████░░░░░  50%"},
		{name: "full", done: 3, total: 3, width: 5, want: "█████ 100%"},
		{name: "min width", done: 1, total: 1, width: 1, want: "█████ 100%"},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			c.Assert(ProgressBar(tt.done, tt.total, tt.width), qt.Equals, tt.want)
		})
	}
}

func TestThemes(t *testing.T) {
	c := qt.New(t)
	defer SetTheme("classic")

	SetTheme("mono")
	c.Assert(Current().BoxChecked, qt.Equals, "[x]")
	c.Assert(Current().SymFail, qt.Equals, "error:")

	SetTheme("NEON")
	c.Assert(Current().BoxChecked, qt.Equals, "◼")

	SetTheme("unknown")
	c.Assert(Current().BoxChecked, qt.Equals, "☑")
}

func TestFeedback(t *testing.T) {
	c := qt.New(t)
	var buf bytes.Buffer

	OK(&buf, "Todo added")
	Fail(&buf, "Error writing todos to file: boom")
	Notice(&buf, "Export cancelled")

	out := buf.String()
	c.Assert(out, qt.Contains, "Todo added")
	c.Assert(out, qt.Contains, "Error writing todos to file: boom")
	c.Assert(out, qt.Contains, "Export cancelled")
	c.Assert(strings.Count(out, "\n"), qt.Equals, 3)
	c.Assert(IsTerminal(&buf), qt.IsFalse)
}

func TestPanel(t *testing.T) {
	c := qt.New(t)
	var buf bytes.Buffer
	Panel(&buf, []string{"What would you like to do?", "1. Add a new todo"})
	c.Assert(buf.String(), qt.Contains, "1. Add a new todo")
	c.Assert(strings.Count(buf.String(), "\n"), qt.Equals, 4)
}

func TestBrowseModel(t *testing.T) {
	c := qt.New(t)
	todos := []model.Todo{
		{Title: "Buy milk", Description: "2%", Completed: true},
		{Title: "Call mom", Description: "sunday"},
	}

	c.Run("items keep positions", func(c *qt.C) {
		m := newBrowseModel(todos)
		items := m.list.Items()
		c.Assert(items, qt.HasLen, 2)
		c.Assert(items[1].(listItem).Title(), qt.Equals, "2. Call mom")
		c.Assert(items[0].FilterValue(), qt.Equals, "Buy milk 2%")
	})

	c.Run("view renders todos", func(c *qt.C) {
		m := newBrowseModel(todos)
		next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
		view := next.View()
		c.Assert(view, qt.Contains, "1. Buy milk - 2%")
		c.Assert(view, qt.Contains, "2. Call mom - sunday")
	})

	c.Run("q goes back", func(c *qt.C) {
		m := newBrowseModel(todos)
		_, cmd := m.Update(runes("q"))
		c.Assert(isQuit(cmd), qt.IsTrue)
	})

	c.Run("esc goes back", func(c *qt.C) {
		m := newBrowseModel(todos)
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		c.Assert(isQuit(cmd), qt.IsTrue)
	})

	c.Run("q is typed into the filter", func(c *qt.C) {
		var m tea.Model = newBrowseModel(todos)
		m, _ = m.Update(runes("/"))
		c.Assert(m.(browseModel).list.FilterState(), qt.Equals, list.Filtering)
		_, cmd := m.Update(runes("q"))
		c.Assert(isQuit(cmd), qt.IsFalse)
	})
}
