package cli

import (
	"io"

	"github.com/pkg/browser"
)

func init() {
	// stdout carries the text and JSON output
	browser.Stdout = io.Discard
}

// openBrowser opens the file at path in the system's default browser
func openBrowser(path string) error {
	return browser.OpenFile(path)
}
