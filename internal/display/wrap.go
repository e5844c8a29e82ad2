package display

import "github.com/muesli/reflow/wordwrap"

// DefaultWidth is the classic 80-column telnet width. Room and stats
// renderings are wrapped to it before hitting the wire.
const DefaultWidth = 80

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}
