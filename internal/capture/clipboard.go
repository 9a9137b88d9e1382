package capture

import "github.com/atotto/clipboard"

// SystemClipboard reads the host clipboard.
func SystemClipboard() (string, error) {
	return clipboard.ReadAll()
}
