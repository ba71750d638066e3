package render

import (
	"io"
)

// writer wraps an io.Writer and keeps the first write error.
// Once an error is recorded, further writes are dropped.
type writer struct {
	w   io.Writer
	n   int64
	err error
}

func newWriter(w io.Writer) *writer {
	return &writer{w: w}
}

func (w *writer) WriteString(s string) {
	if w.err != nil || s == "" {
		return
	}
	n, err := io.WriteString(w.w, s)
	w.n += int64(n)
	w.err = err
}

func (w *writer) WriteStrings(ss ...string) {
	for _, s := range ss {
		w.WriteString(s)
	}
}
