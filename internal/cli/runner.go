package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/action"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/reducer"
	"github.com/Makepad-fr/tada/internal/session"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options tune output behavior from root flags and config.
type Options struct {
	Group bool // list grouped by pending/done
	JSON  bool // print the final list as JSON

	Reducer reducer.Reducer
	Logger  *log.Logger

	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

func (o *Options) defaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

func (o Options) newSession() *session.Session {
	return session.New(session.WithReducer(o.Reducer), session.WithLogger(o.Logger))
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		PrintHelp(opt.Stderr)
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "run":
		if len(a) != 1 {
			ui.Fail(opt.Stderr, "usage: todo run <file|->")
			return 2
		}
		return doRun(a[0], opt)

	case "demo":
		return doDemo(opt)

	case "tui", "ls":
		return doInteractive(opt)
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - a tiny action-driven todo list

Usage:
  todo [flags] <subcommand> [args]

Subcommands:
  run <file|->       Replay an action script and print the resulting list
  demo               Walk through add, toggle and delete on a fresh list
  tui                Interactive list (alias: ls)

Flags:
  -group             Group output by pending/done
  -json              Print the final list as JSON
  -theme <name>      classic, neon or mono
  -config <path>     Config file (default: $XDG_CONFIG_HOME/tada/config.toml)

Script lines:
  add <text...>      Append a new item
  toggle <id|@N>     Flip done for an item (alias: done)
  delete <id|@N>     Remove an item (alias: rm)
  {"type":...}       JSON action, e.g. {"type":"add-todo","payload":{"name":"Buy milk"}}

Examples:
  printf 'add Buy milk\ndone @1\n' | todo run -
  todo -group run today.todo
`)
}

// -------------- subcommand impls ----------------

func doRun(path string, opt Options) int {
	var r io.Reader = opt.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			ui.Fail(opt.Stderr, "open: "+err.Error())
			return 1
		}
		defer f.Close()
		r = f
	}

	steps, err := parseScript(r)
	if err != nil {
		ui.Fail(opt.Stderr, "parse: "+err.Error())
		var se *ScriptError
		if errors.As(err, &se) {
			return 2
		}
		return 1
	}

	sess := opt.newSession()
	for _, st := range steps {
		a, err := st.toAction(sess.Items())
		if err != nil {
			ui.Fail(opt.Stderr, fmt.Sprintf("line %d: %v", st.line, err))
			ui.Hint(opt.Stderr, "positions are 1-based and count the items present at that line")
			return 2
		}
		if _, err := sess.Dispatch(a); err != nil {
			ui.Fail(opt.Stderr, fmt.Sprintf("line %d: %v", st.line, err))
			return 2
		}
	}
	return render(sess.Items(), opt)
}

func doDemo(opt Options) int {
	sess := opt.newSession()
	show := func(label string, a action.Action) bool {
		items, err := sess.Dispatch(a)
		if err != nil {
			ui.Fail(opt.Stderr, label+": "+err.Error())
			return false
		}
		if !opt.JSON {
			fmt.Fprintln(opt.Stdout, ui.C(ui.Current().Accent, label))
			ui.Panel(opt.Stdout, ui.ListLines(items, opt.Group))
		}
		return true
	}

	if !show(`add "buy milk"`, action.AddItem{Text: "buy milk"}) ||
		!show(`add "walk dog"`, action.AddItem{Text: "walk dog"}) {
		return 1
	}
	items := sess.Items()
	milk, dog := items[0].ID, items[1].ID
	if !show(`toggle "buy milk"`, action.ToggleItem{ID: milk}) ||
		!show(`delete "walk dog"`, action.DeleteItem{ID: dog}) {
		return 1
	}
	if opt.JSON {
		return render(sess.Items(), opt)
	}
	ui.OK(opt.Stdout, "demo finished")
	return 0
}

func doInteractive(opt Options) int {
	sess := opt.newSession()
	if err := tui.Run(sess, opt.Stdin, opt.Stdout); err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
	return render(sess.Items(), opt)
}

func render(items model.List, opt Options) int {
	if opt.JSON {
		b, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			ui.Fail(opt.Stderr, "json marshal: "+err.Error())
			return 1
		}
		fmt.Fprintln(opt.Stdout, string(b))
		return 0
	}
	ui.Panel(opt.Stdout, ui.ListLines(items, opt.Group))
	return 0
}
