package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/ashureev/mood-sense/internal/domain"
	"github.com/ashureev/mood-sense/internal/journal"
)

const helpText = `Type how you feel and press Enter to get an insight.
Commands:
  :scale N   set mood scale (1-5)
  :history   show or hide mood history
  :help      show this help
  :quit      exit
`

type repl struct {
	app *journal.App
	con *console
	wg  sync.WaitGroup
}

func newREPL(app *journal.App, con *console) *repl {
	return &repl{app: app, con: con}
}

// Run reads commands from in until EOF, :quit, or ctx is cancelled.
// Pending submissions are awaited before returning.
func (r *repl) Run(ctx context.Context, in io.Reader) {
	r.app.LoadHistory(ctx)
	r.con.Printf("Mood Sense journal. %d entries. Type :help for commands.\n", r.app.View().History.Len())
	r.prompt()

	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-readCtx.Done():
				return
			}
		}
	}()

	defer r.wg.Wait()
	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if !r.handle(ctx, line) {
				return
			}
			r.prompt()
		}
	}
}

func (r *repl) prompt() {
	r.con.Printf("[mood %d/%d] > ", r.app.View().Scale, domain.MaxScale)
}

// handle processes one input line and reports whether to keep reading.
func (r *repl) handle(ctx context.Context, line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, ":") {
		r.submit(ctx, line)
		return true
	}

	cmd, arg, _ := strings.Cut(trimmed, " ")
	switch cmd {
	case ":quit", ":q":
		return false
	case ":help":
		r.con.Printf("%s", helpText)
	case ":scale":
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			r.con.Printf("usage: :scale N (%d-%d)\n", domain.MinScale, domain.MaxScale)
			return true
		}
		r.app.SetScale(n)
	case ":history":
		if r.app.ToggleHistory() {
			r.con.History(r.app.View().History)
		} else {
			r.con.Printf("History hidden.\n")
		}
	default:
		r.con.Printf("unknown command %q, type :help\n", cmd)
	}
	return true
}

func (r *repl) submit(ctx context.Context, description string) {
	// The guard is claimed here, on the input loop, so a line typed while a
	// submission is pending cannot replace the pending description.
	run, err := r.app.BeginSubmit(description)
	if errors.Is(err, journal.ErrSubmitInProgress) {
		r.con.Printf("Submission in progress, please wait.\n")
		return
	}
	// Validation failures were surfaced through the notifier.
	if err != nil {
		return
	}
	r.con.Printf("Submitting...\n")

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := run(ctx); err != nil {
			return
		}

		v := r.app.View()
		r.con.Printf("\nInsight:\n%s\n\n", v.Insight)
		if v.ShowHistory {
			r.con.History(v.History)
		}
	}()
}
