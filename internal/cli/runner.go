package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ogzhncrt/dailydo/internal/model"
	"github.com/ogzhncrt/dailydo/internal/store"
	"github.com/ogzhncrt/dailydo/internal/tui"
	"github.com/ogzhncrt/dailydo/internal/ui"
)

// Options carry the store and streams into the dispatcher so tests can swap
// in an in-memory document and captured buffers.
type Options struct {
	Store store.Store
	In    io.Reader
	Out   io.Writer
	Err   io.Writer
	Group bool // list grouped by pending/done
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
//
// Zero arguments is a deliberate no-op, not an error. `complete` is the only
// command that takes a trailing token; anything else with extra tokens is
// rejected before dispatch.
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		return 0
	}
	if len(args) > 1 && args[0] != "complete" {
		ui.Fail(opt.Err, "only one argument can be accepted")
		PrintHelp(opt.Out)
		return 2
	}

	switch args[0] {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "new":
		return doNew(opt)

	case "get":
		return doGet(opt)

	case "complete":
		if len(args) != 2 {
			ui.Fail(opt.Err, "invalid number of arguments passed for complete command")
			return 2
		}
		return doComplete(args[1], opt)

	case "interactive":
		return doInteractive(opt)
	}

	ui.Fail(opt.Err, "invalid command passed")
	PrintHelp(opt.Out)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `todo - a tiny to-do list

Usage:
  todo [flags] <command> [args]

Commands:
  new                Prompt for a title and add it to the list
  get                List every to-do
  complete <id>      Mark the to-do with the given id as complete
  interactive        Browse and edit the list in the terminal
  help               Show this help

Flags:
  -group             Group output by pending/done
  -theme <name>      Output theme: classic or mono

Examples:
  todo new
  todo get
  todo complete 2
`)
}

// -------------- subcommand impls ----------------

func doNew(opt Options) int {
	doc, err := opt.Store.Load()
	if err != nil {
		ui.Fail(opt.Err, "load: "+err.Error())
		return 1
	}
	fmt.Fprint(opt.Out, "Enter a title: ")
	line, err := bufio.NewReader(opt.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		ui.Fail(opt.Err, "read title: "+err.Error())
		return 1
	}
	// Trailing whitespace only; an empty title is accepted verbatim.
	title := strings.TrimRight(line, " \t\r\n")
	doc.Append(title)
	if err := opt.Store.Save(doc); err != nil {
		ui.Fail(opt.Err, "save: "+err.Error())
		return 1
	}
	ui.OK(opt.Out, "added")
	return 0
}

func doGet(opt Options) int {
	doc, err := opt.Store.Load()
	if err != nil {
		ui.Fail(opt.Err, "load: "+err.Error())
		return 1
	}
	var lines []string
	if opt.Group {
		lines = groupLines(doc.Todos)
	} else {
		lines = flatLines(doc.Todos)
	}
	for _, ln := range lines {
		fmt.Fprintln(opt.Out, ln)
	}
	return 0
}

func doComplete(tok string, opt Options) int {
	n, err := strconv.Atoi(tok)
	if err != nil {
		ui.Fail(opt.Err, "please provide a valid number for complete command")
		return 2
	}
	doc, err := opt.Store.Load()
	if err != nil {
		ui.Fail(opt.Err, "load: "+err.Error())
		return 1
	}
	// Range check against the record count, not id existence. With only
	// new/get/complete ids stay contiguous and the two are equivalent; an id
	// inside the range that matches nothing falls through as a silent no-op.
	if n > len(doc.Todos) {
		ui.Fail(opt.Err, "invalid number passed for complete command")
		return 2
	}
	if !doc.MarkComplete(n) {
		return 0
	}
	if err := opt.Store.Save(doc); err != nil {
		ui.Fail(opt.Err, "save: "+err.Error())
		return 1
	}
	ui.OK(opt.Out, "completed")
	return 0
}

func doInteractive(opt Options) int {
	doc, err := opt.Store.Load()
	if err != nil {
		ui.Fail(opt.Err, "load: "+err.Error())
		return 1
	}
	saved, err := tui.Run(doc, opt.Store)
	if err != nil {
		ui.Fail(opt.Err, "interactive: "+err.Error())
		return 1
	}
	if saved {
		ui.OK(opt.Out, "saved")
	}
	return 0
}

// -------------- rendering helpers --------------

func recordLine(r model.Record) string {
	t := ui.Current()
	line := fmt.Sprintf("%d. %s", r.ID, r.Title)
	if r.Complete {
		return t.Done.Render(line + " " + t.SymDone)
	}
	return t.Pending.Render(line)
}

func flatLines(todos []model.Record) []string {
	out := make([]string, 0, len(todos))
	for _, r := range todos {
		out = append(out, recordLine(r))
	}
	return out
}

func groupLines(todos []model.Record) []string {
	var pend, done []model.Record
	for _, r := range todos {
		if r.Complete {
			done = append(done, r)
		} else {
			pend = append(pend, r)
		}
	}
	t := ui.Current()
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
