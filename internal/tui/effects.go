package tui

import (
	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// Clipboard writes text to the platform clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Opener opens a URL in a new browsing context.
type Opener interface {
	OpenURL(url string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

type systemBrowser struct{}

func (systemBrowser) OpenURL(url string) error {
	return browser.OpenURL(url)
}

// SystemClipboard returns the OS clipboard.
func SystemClipboard() Clipboard { return systemClipboard{} }

// SystemBrowser returns the OS default browser.
func SystemBrowser() Opener { return systemBrowser{} }
