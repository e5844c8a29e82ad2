package listener

import (
	"bytes"
	"io"
)

// lineEndingAdapter converts between the game's \n line endings and the
// \r\n (telnet) or bare \r (ssh without a pty) endings on the wire.
type lineEndingAdapter struct {
	rw io.ReadWriter
}

func newCRLFReadWriter(rw io.ReadWriter) io.ReadWriter {
	return &lineEndingAdapter{rw: rw}
}

func (a *lineEndingAdapter) Read(p []byte) (int, error) {
	n, err := a.rw.Read(p)
	if n > 0 {
		normalized := bytes.ReplaceAll(p[:n], []byte("\r\n"), []byte("\n"))
		normalized = bytes.ReplaceAll(normalized, []byte("\r"), []byte("\n"))
		n = copy(p, normalized)
	}
	return n, err
}

func (a *lineEndingAdapter) Write(p []byte) (int, error) {
	_, err := a.rw.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n")))
	// Report the caller's length; the expansion is invisible to them.
	return len(p), err
}
