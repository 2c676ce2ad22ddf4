// ABOUTME: Dispatch for resolved command lines: quit, help, remote, and the change subtree.
// ABOUTME: Remote calls run under the progress indicator; failures reprompt instead of exiting.

package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/ger-go/internal/gerrit"
	"github.com/mauromedda/ger-go/internal/log"
	"github.com/mauromedda/ger-go/pkg/shell/cmdtree"
	"github.com/mauromedda/ger-go/pkg/shell/render"
	"github.com/mauromedda/ger-go/pkg/shell/spin"
	"github.com/mauromedda/ger-go/pkg/shell/terminal"
)

// Action tells the shell loop what to do after a dispatch.
type Action int

const (
	// ActionContinue reprompts for the next line.
	ActionContinue Action = iota
	// ActionQuit ends the session with exit code 0.
	ActionQuit
)

// Dispatcher executes resolved token lines against the remote client.
// The query cache behind the $N shorthand is guarded for reuse across
// prompts.
type Dispatcher struct {
	client gerrit.Client
	term   terminal.Terminal
	rend   *render.Renderer
	md     *MarkdownRenderer
	tree   *cmdtree.Node
	remote string

	indexStyle  lipgloss.Style
	numberStyle lipgloss.Style
	statusStyle lipgloss.Style

	mu   sync.Mutex
	last []gerrit.Change // results of the most recent query
}

// New returns a Dispatcher drawing through rend. tree is the command
// tree the editor resolves against; help output is walked from it.
// remote is the configured server URL, shown by the remote command.
func New(client gerrit.Client, t terminal.Terminal, rend *render.Renderer, tree *cmdtree.Node, remote string) *Dispatcher {
	return &Dispatcher{
		client:      client,
		term:        t,
		rend:        rend,
		md:          NewMarkdownRenderer(),
		tree:        tree,
		remote:      remote,
		indexStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		numberStyle: rend.Style().AccentStyle,
		statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// Dispatch executes one resolved line. The returned error is reserved
// for terminal I/O failures; remote failures are reported on screen and
// resolve to ActionContinue.
func (d *Dispatcher) Dispatch(ctx context.Context, tokens []string) (Action, error) {
	if len(tokens) == 0 {
		return ActionContinue, nil
	}

	switch tokens[0] {
	case "quit", "exit":
		return ActionQuit, nil
	case "help", "?":
		return ActionContinue, d.printHelp()
	case "remote":
		return ActionContinue, d.printRemote()
	case "change":
		return d.dispatchChange(ctx, tokens[1:])
	}
	// Unreachable for lines the editor resolved, kept for direct calls.
	return ActionContinue, d.rend.Println("unknown command: " + tokens[0])
}

func (d *Dispatcher) printHelp() error {
	for _, l := range cmdtree.HelpLines(d.tree, "") {
		if err := d.rend.Println(l); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) printRemote() error {
	if d.remote == "" {
		return d.rend.Println("no remotes configured")
	}
	return d.rend.Println(d.remote)
}

func (d *Dispatcher) dispatchChange(ctx context.Context, args []string) (Action, error) {
	if len(args) == 0 {
		return ActionContinue, d.printChangeHelp()
	}
	switch args[0] {
	case "query":
		return ActionContinue, d.queryChanges(ctx, args[1:])
	case "show":
		return ActionContinue, d.showChange(ctx, args[1:])
	case "help", "?":
		return ActionContinue, d.printChangeHelp()
	case "exit":
		return ActionContinue, nil
	case "quit":
		return ActionQuit, nil
	}
	return ActionContinue, d.rend.Println("unknown change command: " + args[0])
}

func (d *Dispatcher) printChangeHelp() error {
	change := d.tree.Find("change")
	if change == nil {
		return d.rend.Println("no change commands configured")
	}
	for _, l := range cmdtree.HelpLines(change, "change ") {
		if err := d.rend.Println(l); err != nil {
			return err
		}
	}
	return nil
}

// queryChanges runs a change search and prints one line per result,
// numbering each so show can reference them as $N.
func (d *Dispatcher) queryChanges(ctx context.Context, filters []string) error {
	changes, err := withIndicator(d, func() ([]gerrit.Change, error) {
		return d.client.QueryChanges(ctx, filters)
	})
	if err != nil {
		log.Warn("query failed: %v", err)
		return d.rend.Println("query failed: " + err.Error())
	}

	if len(changes) == 0 {
		if err := d.rend.Println("no changes"); err != nil {
			return err
		}
	}
	for i, ch := range changes {
		line := fmt.Sprintf("%s %s  %s  %s",
			d.indexStyle.Render(strconv.Itoa(i+1)),
			d.numberStyle.Render(strconv.Itoa(ch.Number)),
			d.statusStyle.Render(fmt.Sprintf("%-3s", ch.Status)),
			ch.Subject,
		)
		if err := d.rend.Println(line); err != nil {
			return err
		}
	}

	d.mu.Lock()
	d.last = changes
	d.mu.Unlock()
	return nil
}

// showChange fetches one change and renders its summary line, Change-Id,
// and current commit message.
func (d *Dispatcher) showChange(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return d.rend.Println("Required ID argument")
	}

	id, err := d.resolveID(args[0])
	if err != nil {
		return d.rend.Println(err.Error())
	}

	change, fetchErr := withIndicator(d, func() (*gerrit.Change, error) {
		return d.client.GetChange(ctx, id)
	})
	if fetchErr != nil {
		log.Warn("show failed: %v", fetchErr)
		return d.rend.Println("show failed: " + fetchErr.Error())
	}

	head := fmt.Sprintf("%s  %s  %s",
		d.numberStyle.Render(strconv.Itoa(change.Number)),
		d.statusStyle.Render(fmt.Sprintf("%-3s", change.Status)),
		change.Subject,
	)
	if err := d.rend.Println(head); err != nil {
		return err
	}
	if err := d.rend.Println(change.ChangeID); err != nil {
		return err
	}
	if err := d.rend.Println(""); err != nil {
		return err
	}
	return d.printMessage(change.CurrentCommitMessage())
}

// printMessage renders the commit message through the markdown renderer
// and prints it line by line, indented.
func (d *Dispatcher) printMessage(msg string) error {
	if msg == "" {
		return nil
	}
	w, _, err := d.term.Size()
	if err != nil {
		w = 80
	}

	rendered := d.md.Render(msg, max(w-8, 20))
	for _, line := range strings.Split(rendered, "\n") {
		if err := d.rend.Println("    " + strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return d.rend.Println("")
}

// resolveID maps an ID argument to a change number. A $N argument is a
// 1-based index into the last query's results.
func (d *Dispatcher) resolveID(arg string) (string, error) {
	isIndex := strings.HasPrefix(arg, "$")
	num := strings.TrimPrefix(arg, "$")

	n, err := strconv.ParseUint(num, 10, 32)
	if err != nil {
		return "", errors.New("Argument is not a number")
	}
	if !isIndex {
		return num, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if n == 0 || int(n) > len(d.last) {
		return "", errors.New("ID out of bounds")
	}
	return strconv.Itoa(d.last[n-1].Number), nil
}

// withIndicator runs fn under the progress indicator, joining the
// indicator goroutine and clearing its line before any result prints.
func withIndicator[T any](d *Dispatcher, fn func() (T, error)) (T, error) {
	ind := spin.Start(d.term)
	out, err := fn()
	ind.Stop()
	if clearErr := d.rend.ClearLine(); clearErr != nil && err == nil {
		err = clearErr
	}
	return out, err
}
