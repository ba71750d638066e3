// Package sink provides the buffered file destination documents are written
// into.
//
// A [File] is created (truncating any existing file) with [Create] or opened
// for appending with [OpenAppend]. Writes are buffered; [File.Flush] pushes
// them to disk and [File.Close] flushes before closing.
//
//	f, err := sink.Create("out.tex")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//	_, err = doc.WriteTo(f)
package sink

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/texweave/texweave/pkg/errors"
)

// Mode selects how an existing file is treated.
type Mode int

const (
	// ModeCreate truncates an existing file.
	ModeCreate Mode = iota
	// ModeAppend writes after the existing content.
	ModeAppend
)

// File is a buffered, append-only output file.
type File struct {
	path string
	f    *os.File
	buf  *bufio.Writer
}

// Create creates or truncates the file at path. Parent directories are
// created as needed.
func Create(path string) (*File, error) {
	return Open(path, ModeCreate)
}

// OpenAppend opens the file at path for appending, creating it if needed.
func OpenAppend(path string) (*File, error) {
	return Open(path, ModeAppend)
}

// Open opens path with the given mode.
func Open(path string, mode Mode) (*File, error) {
	if err := errors.ValidateOutputPath(path); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create directory for %s", path)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if mode == ModeAppend {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	return &File{path: path, f: f, buf: bufio.NewWriter(f)}, nil
}

// Path returns the file path.
func (s *File) Path() string { return s.path }

// Write implements io.Writer.
func (s *File) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// WriteString implements io.StringWriter.
func (s *File) WriteString(str string) (int, error) {
	return s.buf.WriteString(str)
}

// Flush writes buffered data to the file.
func (s *File) Flush() error {
	if err := s.buf.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "flush %s", s.path)
	}
	return nil
}

// Close flushes and closes the file. The first error wins.
func (s *File) Close() error {
	flushErr := s.Flush()
	closeErr := s.f.Close()
	if flushErr != nil {
		return flushErr
	}
	if closeErr != nil {
		return errors.Wrap(errors.ErrCodeIO, closeErr, "close %s", s.path)
	}
	return nil
}
