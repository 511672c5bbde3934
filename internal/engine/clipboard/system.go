package clipboard

import (
	"errors"

	atotto "github.com/atotto/clipboard"
)

// OSClipboard writes to the operating system clipboard.
type OSClipboard struct{}

// WriteAll copies text to the system clipboard.
func (OSClipboard) WriteAll(text string) error {
	if atotto.Unsupported {
		return errors.New("no clipboard utility found")
	}
	return atotto.WriteAll(text)
}

// SystemAvailable reports whether a system clipboard can be used on this
// machine.
func SystemAvailable() bool {
	return !atotto.Unsupported
}
