package console

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// StatusLine prints a single line that is rewritten in place.
type StatusLine struct {
	output        io.Writer
	maxCharacters int
	visible       bool
}

func NewStatusLine(options ...func(*StatusLine)) *StatusLine {
	result := &StatusLine{
		output:        os.Stdout,
		maxCharacters: 80,
	}
	for _, option := range options {
		option(result)
	}
	return result
}

func ToWriter(w io.Writer) func(*StatusLine) {
	return func(s *StatusLine) {
		s.output = w
	}
}

func LineLength(characters int) func(*StatusLine) {
	return func(s *StatusLine) {
		s.maxCharacters = characters
	}
}

// Show replaces the current line by the message.
func (l *StatusLine) Show(message string) {
	fmt.Fprint(l.output, l.pad(message), "\r")
	l.visible = true
}

// Clear rewrites the current line. An empty message erases the line,
// otherwise the message is kept and the cursor moves to the next line.
func (l *StatusLine) Clear(newMessage string) {
	if !l.visible && newMessage == "" {
		return
	}
	fmt.Fprint(l.output, l.pad(newMessage))
	if newMessage == "" {
		fmt.Fprint(l.output, "\r")
	} else {
		fmt.Fprint(l.output, "\n")
	}
	l.visible = false
}

func (l *StatusLine) pad(message string) string {
	if len(message) > l.maxCharacters {
		return message[0:l.maxCharacters]
	}
	return message + strings.Repeat(" ", l.maxCharacters-len(message))
}
