package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ogzhncrt/dailydo/internal/quote"
	"github.com/ogzhncrt/dailydo/internal/ui"
)

func main() {
	saveKey := flag.String("save-key", "", "store an API key for the quote service")
	logout := flag.Bool("logout", false, "forget the stored API key")
	flag.Parse()

	if !ui.IsTerminal(os.Stdout) {
		ui.SetTheme("mono")
	}

	switch {
	case *saveKey != "":
		if err := quote.SaveKey(*saveKey); err != nil {
			ui.Fail(os.Stderr, "save key: "+err.Error())
			os.Exit(1)
		}
		ui.OK(os.Stdout, "key saved")
		return
	case *logout:
		if err := quote.DeleteKey(); err != nil {
			ui.Fail(os.Stderr, "logout: "+err.Error())
			os.Exit(1)
		}
		ui.OK(os.Stdout, "key removed")
		return
	}

	c := quote.NewClient()
	switch ki, err := quote.LoadKey(); {
	case err != nil:
		// Fetch still works keyless, but a broken credentials file
		// deserves a mention.
		ui.Fail(os.Stderr, "load key: "+err.Error())
	case ki != nil:
		c.APIKey = ki.Key
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	q, err := c.Fetch(ctx)
	if err != nil {
		var apiErr *quote.APIError
		if errors.As(err, &apiErr) {
			ui.Fail(os.Stderr, apiErr.Message)
		} else {
			ui.Fail(os.Stderr, "could not fetch the quote of the day: "+err.Error())
		}
		os.Exit(1)
	}
	fmt.Println(ui.Current().Success.Render(q.Text + " - " + q.Author))
}
