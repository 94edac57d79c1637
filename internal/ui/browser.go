package ui

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// BrowserOpener opens URLs in the default browser.
type BrowserOpener struct{}

func (BrowserOpener) OpenURL(url string) error {
	return browser.OpenURL(url)
}

// OpenFile opens a local file in the default browser.
func (BrowserOpener) OpenFile(path string) error {
	return browser.OpenFile(path)
}

// URLPrinter prints URLs instead of opening them.
type URLPrinter struct {
	Output io.Writer
}

func (p URLPrinter) OpenURL(url string) error {
	_, err := fmt.Fprintln(p.Output, url)
	return err
}
