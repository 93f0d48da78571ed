package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/prompt"
	"github.com/Makepad-fr/tada/internal/store/memstore"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options tune behavior from configuration.
type Options struct {
	ExportDir string // where export files are written
	View      string // config.ViewPlain or config.ViewBrowse
}

// Choice is one entry of the main menu.
type Choice int

const (
	AddTodo Choice = iota + 1
	ViewTodos
	MarkTodoComplete
	MarkTodoIncomplete
	EditTodo
	DeleteTodo
	WriteTodosInFile
	Quit
)

var choices = []Choice{
	AddTodo,
	ViewTodos,
	MarkTodoComplete,
	MarkTodoIncomplete,
	EditTodo,
	DeleteTodo,
	WriteTodosInFile,
	Quit,
}

func (c Choice) String() string {
	switch c {
	case AddTodo:
		return "Add a new todo"
	case ViewTodos:
		return "View all todos"
	case MarkTodoComplete:
		return "Mark a todo as complete"
	case MarkTodoIncomplete:
		return "Mark a todo as incomplete"
	case EditTodo:
		return "Edit a todo"
	case DeleteTodo:
		return "Delete a todo"
	case WriteTodosInFile:
		return "Write todos in a file"
	case Quit:
		return "Quit the program"
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}

// parseChoice matches the exact menu number, so "01" or " 1x" are rejected.
func parseChoice(s string) (Choice, bool) {
	for _, c := range choices {
		if s == strconv.Itoa(int(c)) {
			return c, true
		}
	}
	return 0, false
}

// App owns the store for the whole session and drives the menu loop.
type App struct {
	store  *memstore.Store
	in     *prompt.Prompter
	stdin  io.Reader
	out    io.Writer
	errOut io.Writer
	log    *log.Logger
	opt    Options
}

// New wires an App. A nil logger discards log output.
func New(store *memstore.Store, stdin io.Reader, out, errOut io.Writer, logger *log.Logger, opt Options) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opt.ExportDir == "" {
		opt.ExportDir = config.DefaultExportDir
	}
	if opt.View == "" {
		opt.View = config.DefaultView
	}
	return &App{
		store:  store,
		in:     prompt.New(stdin, out),
		stdin:  stdin,
		out:    out,
		errOut: errOut,
		log:    logger,
		opt:    opt,
	}
}

// Run loops over the menu until Quit or until input is closed.
// Only a failure to read input is returned.
func (a *App) Run() error {
	fmt.Fprintln(a.out, "Welcome to your todo list!")

	for {
		a.printMenu()

		in, err := a.in.Line()
		if err != nil {
			return a.stop(err)
		}
		c, ok := parseChoice(in)
		if !ok {
			fmt.Fprintln(a.out, "Invalid input, please try again")
			continue
		}
		if c == Quit {
			fmt.Fprintln(a.out, "Goodbye!")
			return nil
		}

		fmt.Fprintln(a.out)
		a.log.Debug("dispatch", "choice", c.String())
		if err := a.dispatch(c); err != nil {
			return a.stop(err)
		}
	}
}

func (a *App) dispatch(c Choice) error {
	switch c {
	case AddTodo:
		return a.add()
	case ViewTodos:
		return a.view()
	case MarkTodoComplete:
		return a.markTodo(true)
	case MarkTodoIncomplete:
		return a.markTodo(false)
	case EditTodo:
		return a.edit()
	case DeleteTodo:
		return a.remove()
	case WriteTodosInFile:
		return a.exportTodos()
	}
	return nil
}

// stop ends the session on a read failure. Closed input ends it like Quit.
func (a *App) stop(err error) error {
	if errors.Is(err, io.EOF) {
		a.log.Debug("input closed")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Goodbye!")
		return nil
	}
	a.log.Error("reading input", "err", err)
	return err
}

func (a *App) printMenu() {
	done, pending := a.store.Stats()

	lines := []string{
		ui.Header(done, pending),
		ui.Muted(ui.ProgressBar(done, done+pending, 28)),
		"",
		"What would you like to do?",
		"",
	}
	for _, c := range choices {
		lines = append(lines, fmt.Sprintf("%d. %s", int(c), c))
	}

	fmt.Fprintln(a.out)
	ui.Panel(a.out, lines)
}
