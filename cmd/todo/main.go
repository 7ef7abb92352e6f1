package main

import (
	"flag"
	"os"

	"github.com/ogzhncrt/dailydo/internal/cli"
	"github.com/ogzhncrt/dailydo/internal/store/jsonstore"
	"github.com/ogzhncrt/dailydo/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "group output by pending/done")
	themeName := flag.String("theme", "", "output theme: classic or mono")
	flag.Parse()

	name := *themeName
	if name == "" {
		name = os.Getenv("DAILYDO_THEME")
	}
	if name == "" && !ui.IsTerminal(os.Stdout) {
		name = "mono"
	}
	ui.SetTheme(name)

	path, err := jsonstore.DefaultPath()
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}

	// Hand the remaining args to the CLI runner.
	code := cli.Run(flag.Args(), cli.Options{
		Store: jsonstore.New(path),
		In:    os.Stdin,
		Out:   os.Stdout,
		Err:   os.Stderr,
		Group: *groupPending,
	})
	os.Exit(code)
}
