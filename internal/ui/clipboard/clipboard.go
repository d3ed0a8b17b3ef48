package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// Method records which path a copy took.
type Method string

const (
	MethodNative Method = "native"
	MethodOSC52  Method = "osc52"
)

// Clipboard copies text with the system clipboard (wl-copy, xclip, pbcopy,
// etc.) and falls back to an OSC52 escape for SSH/tmux sessions.
type Clipboard struct {
	native   func(string) error
	fallback io.Writer
}

func New() *Clipboard {
	return &Clipboard{native: clipboard.WriteAll, fallback: os.Stderr}
}

// NewWithWriter skips the system clipboard and always emits OSC52 to w.
func NewWithWriter(w io.Writer) *Clipboard {
	return &Clipboard{fallback: w}
}

// Write copies text, returning the method that succeeded.
func (c *Clipboard) Write(text string) (Method, error) {
	if c.native != nil && !clipboard.Unsupported {
		if err := c.native(text); err == nil {
			return MethodNative, nil
		}
	}
	if err := writeOSC52(c.fallback, text); err != nil {
		return "", fmt.Errorf("clipboard: %w", err)
	}
	return MethodOSC52, nil
}

func writeOSC52(w io.Writer, text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(w, "\x1b]52;c;%s\x07", encoded)
	return err
}
