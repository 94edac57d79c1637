package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/julien-sobczak/nt-publish/pkg/console"
)

// Console reports the publication progress on a status line and alerts in red.
type Console struct {
	mu      sync.Mutex
	label   string
	out     io.Writer
	errOut  io.Writer
	status  *console.StatusLine
	spinner *Spinner
}

type ConsoleOption func(*Console)

// WithOutput redirects the status line and the alerts (useful for tests).
func WithOutput(out, errOut io.Writer) ConsoleOption {
	return func(c *Console) {
		c.out = out
		c.errOut = errOut
	}
}

// WithSpinner animates a spinner instead of printing a static status line.
func WithSpinner(spinner *Spinner) ConsoleOption {
	return func(c *Console) {
		c.spinner = spinner
	}
}

func NewConsole(label string, options ...ConsoleOption) *Console {
	result := &Console{
		label:  label,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, option := range options {
		option(result)
	}
	result.status = console.NewStatusLine(console.ToWriter(result.out))
	return result
}

func (c *Console) ShowBusy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.spinner != nil {
		c.spinner.Start(c.label)
		return
	}
	c.status.Show(c.label)
}

func (c *Console) Restore() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.spinner != nil {
		c.spinner.Stop()
		return
	}
	c.status.Clear("")
}

func (c *Console) Alert(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	color.New(color.FgRed).Fprintln(c.errOut, message)
}

// Success prints a confirmation message.
func (c *Console) Success(format string, a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	color.New(color.FgGreen).Fprintln(c.out, fmt.Sprintf(format, a...))
}
