package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Makepad-fr/tada/internal/cli"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/reducer"
	"github.com/Makepad-fr/tada/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand); they win over config.
	groupPending := flag.Bool("group", false, "group output by pending/done")
	jsonOut := flag.Bool("json", false, "print the final list as JSON")
	theme := flag.String("theme", "", "classic, neon or mono")
	cfgPath := flag.String("config", "", "config file path")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		os.Exit(1)
	}
	logger, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		os.Exit(1)
	}

	ui.SetColorMode(cfg.UI.Color)
	if *theme != "" {
		cfg.UI.Theme = *theme
	}
	ui.SetTheme(cfg.UI.Theme)

	ids, ok := reducer.ParseSource(cfg.IDs.Source)
	if !ok {
		ui.Fail(os.Stderr, "config: unknown ids.source: "+cfg.IDs.Source)
		os.Exit(1)
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stderr)
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Group:   *groupPending || cfg.UI.Group,
		JSON:    *jsonOut,
		Reducer: reducer.New(ids),
		Logger:  logger,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
