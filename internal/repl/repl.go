// Package repl implements the interactive session: a blocking read loop
// that applies exactly one command per input line until the user quits or
// input ends.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"taskmaster/internal/engine"
	"taskmaster/internal/ui"
)

// state of the interactive session.
type state int

const (
	running state = iota
	terminated
)

// errCancelled marks input ended by Ctrl-C or EOF.
var errCancelled = errors.New("input cancelled")

// promptFunc reads one line of input. initial pre-fills the line where the
// input mechanism supports editing it.
type promptFunc func(label, initial string) (string, error)

// Session is an interactive command loop over an engine.
type Session struct {
	engine *engine.Engine
	out    io.Writer
	errOut io.Writer
	prompt promptFunc
	state  state
}

// New creates a session reading via promptui and writing to out/errOut.
func New(e *engine.Engine, out, errOut io.Writer) *Session {
	return &Session{
		engine: e,
		out:    out,
		errOut: errOut,
		prompt: readLine,
	}
}

// readLine runs a promptui prompt, mapping interrupt and EOF to
// errCancelled the way the one-shot surface maps Ctrl-C to a clean exit.
func readLine(label, initial string) (string, error) {
	p := promptui.Prompt{Label: label}
	if initial != "" {
		p.Default = initial
		p.AllowEdit = true
	}
	line, err := p.Run()
	switch {
	case err == nil:
		return strings.TrimSpace(line), nil
	case errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF):
		return "", errCancelled
	default:
		return "", err
	}
}

// Run processes commands until the session terminates. Cancelling the main
// prompt (Ctrl-C / EOF) behaves like quit: the loop ends and a final save
// runs.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, "Starting interactive mode. Type 'h' or 'help' for commands.")
	s.printHelp()

	for s.state == running {
		line, err := s.prompt("»", "")
		if err != nil {
			if errors.Is(err, errCancelled) {
				fmt.Fprintln(s.out, ui.StyleWarning.Render("Exiting interactive mode."))
				s.state = terminated
				break
			}
			return err
		}
		s.Eval(line)
	}

	return s.engine.Shutdown()
}

// Eval applies one line of input. Empty lines and unknown commands keep
// the loop running; quit and its aliases terminate it.
func (s *Session) Eval(line string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch command {
	case "l", "list":
		fmt.Fprintln(s.out, ui.RenderTaskList(s.engine.Tasks()))
	case "a", "add":
		s.handleAdd(args)
	case "c", "complete":
		s.handleIndexCommand(args, s.engine.Complete)
	case "+", "up":
		s.handleIndexCommand(args, s.engine.Up)
	case "-", "down":
		s.handleIndexCommand(args, s.engine.Down)
	case "d", "delete":
		s.handleIndexCommand(args, s.engine.Delete)
	case "ch", "change":
		s.handleChange(args)
	case "clr", "clear":
		res, _ := s.engine.Clear()
		s.report(res)
	case "h", "help", "?":
		s.printHelp()
	case "q", "quit", "x", "exit":
		s.state = terminated
	default:
		fmt.Fprintf(s.errOut, "unknown command: '%s'. Type 'h' for help.\n", command)
	}
}

func (s *Session) handleAdd(args []string) {
	desc := strings.Join(args, " ")
	if len(args) == 0 {
		line, err := s.prompt("Description", "")
		if err != nil {
			s.reportCancelled(err)
			return
		}
		desc = line
	}
	res, err := s.engine.Add(desc)
	if err != nil {
		s.reportError(err)
		return
	}
	s.report(res)
}

// handleIndexCommand covers complete, up, down and delete: one 1-based
// index argument, prompted for when missing.
func (s *Session) handleIndexCommand(args []string, apply func(int) (engine.Result, error)) {
	index, ok := s.resolveIndex(args)
	if !ok {
		return
	}
	res, err := apply(index)
	if err != nil {
		s.reportError(err)
		return
	}
	s.report(res)
}

func (s *Session) handleChange(args []string) {
	index, ok := s.resolveIndex(args)
	if !ok {
		return
	}

	desc := strings.Join(argsTail(args), " ")
	if desc == "" {
		// Pre-fill the prompt with the current description so the user
		// can edit it in place.
		tasks := s.engine.Tasks()
		initial := ""
		if index >= 1 && index <= len(tasks) {
			initial = tasks[index-1].Description
		}
		line, err := s.prompt("Description", initial)
		if err != nil {
			s.reportCancelled(err)
			return
		}
		desc = line
	}

	res, err := s.engine.Change(index, desc)
	if err != nil {
		s.reportError(err)
		return
	}
	s.report(res)
}

// resolveIndex takes the index from the first argument or a sub-prompt.
// Reports and returns false on cancel or a non-numeric value.
func (s *Session) resolveIndex(args []string) (int, bool) {
	raw := ""
	if len(args) >= 1 {
		raw = args[0]
	} else {
		line, err := s.prompt("ID", "")
		if err != nil {
			s.reportCancelled(err)
			return 0, false
		}
		raw = line
	}

	index, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(s.errOut, ui.StyleError.Render(fmt.Sprintf("wrong argument: '%s' is not a valid task ID", raw)))
		return 0, false
	}
	return index, true
}

func argsTail(args []string) []string {
	if len(args) < 2 {
		return nil
	}
	return args[1:]
}

func (s *Session) report(res engine.Result) {
	fmt.Fprintln(s.out, ui.StyleSuccess.Render(res.Message))
	if res.Warning != "" {
		fmt.Fprintln(s.errOut, ui.StyleWarning.Render(res.Warning))
	}
}

func (s *Session) reportError(err error) {
	fmt.Fprintln(s.errOut, ui.StyleError.Render(err.Error()))
}

func (s *Session) reportCancelled(err error) {
	if errors.Is(err, errCancelled) {
		fmt.Fprintln(s.out, ui.StyleSubtle.Render("Cancelled."))
		return
	}
	s.reportError(err)
}

func (s *Session) printHelp() {
	row := func(cmd, desc string) {
		fmt.Fprintf(s.out, "  %s - %s\n", ui.StyleCommand.Render(fmt.Sprintf("%-25s", cmd)), desc)
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, ui.StyleTitle.Render("Interactive Mode Commands:"))
	row("l / list", "List all tasks")
	row("a / add <desc>", "Add a new task")
	row("c / complete <id>", "Mark a task as completed")
	row("+ / up <id>", "Increase a task's priority")
	row("- / down <id>", "Decrease a task's priority")
	row("d / delete <id>", "Delete a task")
	row("ch / change <id> <desc>", "Change a task's description")
	row("clr / clear", "Clear all completed tasks")
	row("h / help / ?", "Show this help message")
	row("q / quit / x / exit", "Exit interactive mode")
	fmt.Fprintln(s.out)
}
