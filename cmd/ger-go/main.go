// ABOUTME: CLI entry point for ger-go with terminal crash recovery.
// ABOUTME: Validates config before raw mode; maps failures to distinct exit codes.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mauromedda/ger-go/internal/commands"
	"github.com/mauromedda/ger-go/internal/config"
	"github.com/mauromedda/ger-go/internal/gerrit"
	gerlog "github.com/mauromedda/ger-go/internal/log"
	"github.com/mauromedda/ger-go/pkg/shell/cmdtree"
	"github.com/mauromedda/ger-go/pkg/shell/editor"
	"github.com/mauromedda/ger-go/pkg/shell/history"
	"github.com/mauromedda/ger-go/pkg/shell/render"
	"github.com/mauromedda/ger-go/pkg/shell/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes. Credential failures are reported before the terminal is
// touched; terminal I/O failures after an attempted restore.
const (
	exitOK          = 0
	exitFatal       = 1
	exitCredentials = 2
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("ger-go %s (%s) built %s\n", version, commit, date)
		os.Exit(exitOK)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitFatal)
	}
	if args.verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCredentials)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitFatal)
	}
	os.Exit(exitOK)
}

// run owns the terminal session: everything between raw-mode entry and
// restore happens here.
func run(cfg *config.Settings) error {
	gerlog.SetLevel(cfg.LogLevel())
	if cfg.Verbose {
		if f := openDebugLog(); f != nil {
			defer f.Close()
			gerlog.SetOutput(f)
		}
	}

	filters, err := config.LoadFilters()
	if err != nil {
		return err
	}
	tree := buildTree(filters)

	client := gerrit.NewRESTClient(cfg.URL, cfg.Username, cfg.Password)

	term := terminal.NewProcessTerminal()
	session, err := terminal.Acquire(term)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer session.Release()
	defer terminal.RestoreOnPanic(session)

	style := render.NewStyle(cfg.Prompt, "> ")
	rend := render.New(term, style)
	hist := history.NewStore()
	ed := editor.New(term, rend, hist)
	disp := commands.New(client, term, rend, tree, cfg.URL)

	if err := rend.Println("ger-go " + version + "  type help for commands, quit to leave"); err != nil {
		return err
	}

	ctx := context.Background()
	for {
		tokens, err := ed.Prompt(tree)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		action, err := disp.Dispatch(ctx, tokens)
		if err != nil {
			return err
		}
		if action == commands.ActionQuit {
			return nil
		}
	}
}

// buildTree assembles the command vocabulary the editor resolves
// against. The query filter values come from config so filters.yaml
// extends completion too.
func buildTree(filters []string) *cmdtree.Node {
	return cmdtree.New("ger").AddChildren(
		cmdtree.New("quit", "exit").WithDescription("terminate the session"),
		cmdtree.New("help", "?").WithDescription("list commands"),
		cmdtree.New("remote").WithDescription("print the configured remote"),
		cmdtree.New("change").WithDescription("change commands").AddChildren(
			cmdtree.New("query").WithDescription("query changes").WithArg(&cmdtree.ArgSpec{
				Name:   "FILTER",
				Values: filters,
			}),
			cmdtree.New("show").WithDescription("display change info; $N picks from the last query").WithArg(&cmdtree.ArgSpec{
				Name:     "ID",
				Required: true,
			}),
			cmdtree.New("help", "?").WithDescription("change-level help"),
			cmdtree.New("exit").WithDescription("leave"),
			cmdtree.New("quit").WithDescription("terminate the session"),
		),
	)
}

// openDebugLog opens the verbose-mode log file. Logging setup failures
// never block the session; they fall back to stderr.
func openDebugLog() *os.File {
	if err := config.EnsureDir(config.GlobalDir()); err != nil {
		return nil
	}
	f, err := os.OpenFile(config.DebugLogFile(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil
	}
	return f
}
