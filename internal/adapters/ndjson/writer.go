package ndjson

import (
	"bufio"
	"io"
	"os"

	perr "evalsnap/internal/platform/errors"
)

// Writer appends records as single lines
type Writer struct {
	w       *bufio.Writer
	records int
}

// NewWriter wraps w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 256*1024)}
}

// Write appends one record followed by a newline; raw must not contain newlines
func (w *Writer) Write(raw []byte) error {
	if _, err := w.w.Write(raw); err != nil {
		return perr.Wrap(err, perr.ErrorCodeFilesystem, "ndjson: write record")
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return perr.Wrap(err, perr.ErrorCodeFilesystem, "ndjson: write newline")
	}
	w.records++
	return nil
}

// Records returns the number of records written
func (w *Writer) Records() int { return w.records }

// Flush flushes buffered records
func (w *Writer) Flush() error {
	return perr.WrapIf(w.w.Flush(), perr.ErrorCodeFilesystem, "ndjson: flush")
}

// WriteFile writes records to path, one per line, replacing any prior content
func WriteFile(path string, records [][]byte) error {
	f, err := os.Create(path)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeFilesystem, "create %s", path)
	}
	w := NewWriter(f)
	for _, r := range records {
		if err := w.Write(r); err != nil {
			_ = f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return perr.WrapIf(f.Close(), perr.ErrorCodeFilesystem, "close "+path)
}
