package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ashureev/mood-sense/internal/domain"
	"github.com/ashureev/mood-sense/internal/journal"
)

// console serializes writes from the input loop and submission goroutines.
type console struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
}

func newConsole(out, errOut io.Writer) *console {
	return &console{out: out, err: errOut}
}

// Notify implements journal.Notifier.
func (c *console) Notify(n journal.Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.err, "%s: %s\n", n.Title, n.Message)
}

func (c *console) Printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format, args...)
}

func (c *console) History(h domain.MoodHistory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := journal.RenderHistory(c.out, h, time.Local); err != nil {
		fmt.Fprintf(c.err, "Error: %v\n", err)
	}
}
