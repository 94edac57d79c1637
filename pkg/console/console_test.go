package console_test

import (
	"bytes"
	"testing"

	"github.com/julien-sobczak/nt-publish/pkg/console"
	"gotest.tools/assert"
)

func TestStatusLine(t *testing.T) {
	var out bytes.Buffer

	l := console.NewStatusLine(
		// Override options for unit-testing purposes
		console.ToWriter(&out),
		console.LineLength(20))

	l.Show("Publishing guide.md...")
	l.Show("Opening guide.pdf")
	l.Clear("Done")

	expected := "" +
		"Publishing guide.md.\r" +
		"Opening guide.pdf   \r" +
		"Done                \n"
	assert.Equal(t, out.String(), expected)
}

func TestStatusLine_erase(t *testing.T) {
	var out bytes.Buffer

	l := console.NewStatusLine(console.ToWriter(&out), console.LineLength(10))

	// Nothing to erase
	l.Clear("")
	assert.Equal(t, out.String(), "")

	l.Show("Working")
	l.Clear("")
	l.Clear("")

	expected := "" +
		"Working   \r" +
		"          \r"
	assert.Equal(t, out.String(), expected)
}
