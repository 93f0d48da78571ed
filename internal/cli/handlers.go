package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/export"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/prompt"
	"github.com/Makepad-fr/tada/internal/store/memstore"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Handlers return only read failures; cancellation and validation
// are dealt with here and the menu loop continues.

const (
	backHint   = "Enter 0 if you want to get back to the menu"
	emptyStore = "You have no todos saved"
)

// -------------- creation routine --------------

// createTodo asks for a title and a description. Cancelling the title
// returns prompt.ErrCancelled; cancelling the description leaves it empty.
func (a *App) createTodo() (model.Todo, error) {
	fmt.Fprintln(a.out, backHint)
	fmt.Fprintln(a.out)

	title, err := a.in.String("Enter the title", model.TitleMinLen, model.TitleMaxLen)
	if err != nil {
		return model.Todo{}, err
	}

	desc, err := a.in.String("Enter the description", 0, model.DescriptionMaxLen)
	if err != nil && !errors.Is(err, prompt.ErrCancelled) {
		return model.Todo{}, err
	}

	return model.Todo{Title: title, Description: desc}, nil
}

// -------------- menu actions --------------

func (a *App) add() error {
	todo, err := a.createTodo()
	if errors.Is(err, prompt.ErrCancelled) {
		ui.Notice(a.out, "Cancelled creating new todo")
		return nil
	}
	if err != nil {
		return err
	}

	a.store.Add(todo)
	a.log.Debug("todo added", "position", a.store.Len())
	ui.OK(a.out, "Todo added")
	return nil
}

func (a *App) view() error {
	todos, err := a.store.List()
	if errors.Is(err, memstore.ErrEmpty) {
		fmt.Fprintln(a.out, "No todos found.")
		return nil
	}

	if a.opt.View == config.ViewBrowse && ui.IsTerminal(a.out) {
		if err := ui.Browse(todos, a.stdin, a.out); err != nil {
			a.log.Warn("browse view failed, falling back to plain list", "err", err)
		} else {
			return nil
		}
	}

	a.printTodos(todos)
	return nil
}

func (a *App) printTodos(todos []model.Todo) {
	for i, t := range todos {
		fmt.Fprintln(a.out, t.Line(i+1))
	}
}

// listAll prints the current list; callers have checked it is not empty.
func (a *App) listAll() {
	todos, _ := a.store.List()
	a.printTodos(todos)
}

func (a *App) markTodo(completed bool) error {
	if a.store.Len() == 0 {
		fmt.Fprintln(a.out, emptyStore)
		return nil
	}

	state, success := "incomplete", "Todo marked as incomplete"
	if completed {
		state, success = "completed", "Todo marked as done"
	}
	label := fmt.Sprintf("Which one do you want to mark as %s? %s", state, backHint)

	for {
		a.listAll()

		pos, err := a.in.Index(label, a.store.Len())
		if errors.Is(err, prompt.ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}

		if !a.store.SetCompleted(pos, completed) {
			fmt.Fprintf(a.out, "This todo is already marked as %s\n", state)
			continue
		}

		a.log.Debug("todo marked", "position", pos, "completed", completed)
		fmt.Fprintln(a.out)
		ui.OK(a.out, success)
		return nil
	}
}

func (a *App) edit() error {
	if a.store.Len() == 0 {
		fmt.Fprintln(a.out, emptyStore)
		return nil
	}

	a.listAll()
	pos, err := a.in.Index("Which one do you want to edit? "+backHint, a.store.Len())
	if errors.Is(err, prompt.ErrCancelled) {
		ui.Notice(a.out, "Edit cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	todo, err := a.createTodo()
	if errors.Is(err, prompt.ErrCancelled) {
		ui.Notice(a.out, "Edit cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	// completion state is kept
	a.store.Update(pos, func(t *model.Todo) {
		t.Title = todo.Title
		t.Description = todo.Description
	})
	a.log.Debug("todo edited", "position", pos)
	fmt.Fprintln(a.out)
	ui.OK(a.out, "Todo edited")
	return nil
}

func (a *App) remove() error {
	if a.store.Len() == 0 {
		fmt.Fprintln(a.out, emptyStore)
		return nil
	}

	a.listAll()
	pos, err := a.in.Index("Which one do you want to delete? "+backHint, a.store.Len())
	if errors.Is(err, prompt.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, a.store.Get(pos).Line(pos))
	confirm, err := a.in.String("Are you sure you want to delete this todo? (y/n)", 1, 1)
	if err != nil && !errors.Is(err, prompt.ErrCancelled) {
		return err
	}

	if !strings.EqualFold(confirm, "y") {
		ui.Notice(a.out, "Todo not deleted")
		return nil
	}

	a.store.Remove(pos)
	a.log.Debug("todo deleted", "position", pos)
	fmt.Fprintln(a.out)
	ui.OK(a.out, "Todo deleted successfully")
	return nil
}

func (a *App) exportTodos() error {
	fmt.Fprintln(a.out, backHint)
	fmt.Fprintln(a.out)

	sel, err := a.in.String("Choose file format: (1) JSON, (2) Plain text, (3) YAML", 1, 1)
	if errors.Is(err, prompt.ErrCancelled) {
		ui.Notice(a.out, "Export cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(sel)
	if err != nil {
		ui.Fail(a.errOut, "Error writing todos to file: "+err.Error())
		return nil
	}

	// ErrEmpty just means an empty export.
	todos, _ := a.store.List()
	path, err := export.Write(a.opt.ExportDir, format, todos)
	if err != nil {
		a.log.Debug("export failed", "format", format, "dir", a.opt.ExportDir, "err", err)
		ui.Fail(a.errOut, "Error writing todos to file: "+err.Error())
		return nil
	}

	a.log.Info("todos exported", "path", path, "format", format, "count", len(todos))
	ui.OK(a.out, "Successfully wrote todos to "+path)
	return nil
}
