package model

import "fmt"

// Length limits for a Todo, measured on trimmed input.
const (
	TitleMinLen       = 1
	TitleMaxLen       = 50
	DescriptionMaxLen = 250
)

// Todo is the domain model for a todo entry.
type Todo struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Completed   bool   `json:"completed" yaml:"completed"`
}

// Mark returns "x" for a completed todo and a blank otherwise.
func (t Todo) Mark() string {
	if t.Completed {
		return "x"
	}
	return " "
}

// Line renders the todo as it appears in listings and plain-text exports,
// e.g. "1. Buy milk - 2% [x]". pos is the 1-based position.
func (t Todo) Line(pos int) string {
	return fmt.Sprintf("%d. %s - %s [%s]", pos, t.Title, t.Description, t.Mark())
}
