package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"shellhist/internal/config"
	"shellhist/internal/history"
	"shellhist/internal/inject"
	"shellhist/internal/tui"
)

// Version info. Overridden at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootFlags := flag.NewFlagSet("shellhist", flag.ContinueOnError)
	historyFile := rootFlags.String("file", "", "history file to search (default $HISTFILE or ~/.bash_history)")
	theme := rootFlags.String("theme", "", "catppuccin flavor: mocha|macchiato|frappe|latte")
	rows := rootFlags.Int("rows", 0, "cap the number of result rows (0 = fill the screen)")
	printOnly := rootFlags.Bool("print", false, "print the selected command instead of injecting it")
	configPath := rootFlags.String("config", "", "config file (default ~/.config/shellhist/config.yaml)")

	versionCmd := &ffcli.Command{
		Name:       "version",
		ShortUsage: "shellhist version",
		Exec: func(context.Context, []string) error {
			fmt.Printf("shellhist %s (%s)\n", version, commit)
			return nil
		},
	}

	root := &ffcli.Command{
		Name:        "shellhist",
		ShortUsage:  "shellhist [flags]",
		ShortHelp:   "interactively search shell history and re-enter the chosen command",
		FlagSet:     rootFlags,
		Options:     []ff.Option{ff.WithEnvVarPrefix("SHELLHIST")},
		Subcommands: []*ffcli.Command{versionCmd},
		Exec: func(context.Context, []string) error {
			return run(*configPath, *historyFile, *theme, *rows, *printOnly)
		},
	}

	if err := root.ParseAndRun(context.Background(), os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes one interactive search session.
func run(configPath, historyFile, theme string, rows int, printOnly bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// Flags win over config.
	if historyFile == "" {
		historyFile = cfg.HistoryFile
	}
	if historyFile == "" {
		historyFile = history.DefaultPath()
	}
	if theme == "" {
		theme = cfg.Theme
	}
	if rows == 0 {
		rows = cfg.MaxRows
	}
	if cfg.NoInject {
		printOnly = true
	}

	// A missing history file is fatal: there is nothing to search.
	snap, err := history.Load(historyFile)
	if err != nil {
		return err
	}

	// The watcher only feeds the stale-history hint; a session without
	// it is still fully functional.
	watcher, err := history.NewWatcher(historyFile)
	if err == nil {
		watcher.Start()
		defer watcher.Stop() //nolint:errcheck // nothing to do on close failure
	} else {
		watcher = nil
	}

	m := tui.NewModel(tui.ModelOptions{
		Snapshot: snap,
		Theme:    theme,
		MaxRows:  rows,
		Watcher:  watcher,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run session: %w", err)
	}

	cmd, ok := final.(tui.Model).Result()
	if !ok || cmd == "" {
		return nil
	}

	return deliver(cmd, printOnly)
}

// loadConfig loads the explicit config path, or the default locations.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromDefaultPath()
}

// deliver hands the selected command back to the shell: into the
// terminal input buffer when possible, to stdout otherwise. An
// injection failure does not undo the selection, so it degrades to
// printing.
func deliver(cmd string, printOnly bool) error {
	if !printOnly {
		err := inject.Fill(cmd)
		if err == nil {
			fmt.Println()
			return nil
		}
		fmt.Fprintln(os.Stderr, "shellhist:", err)
	}
	fmt.Println(cmd)
	return nil
}
