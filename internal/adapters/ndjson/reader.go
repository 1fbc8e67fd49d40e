package ndjson

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"

	perr "evalsnap/internal/platform/errors"
	"evalsnap/internal/platform/logger"
	pstrings "evalsnap/internal/platform/strings"

	"github.com/tidwall/gjson"
)

const (
	maxScanTokenSize = 64 * 1024 * 1024
	sampleRawMax     = 2048 // max bytes of raw JSON to log for the sample
)

// Record is one non-blank line of the document
type Record struct {
	// Line is the 1-based physical line number
	Line int
	Raw  []byte
}

// Reader streams Records from a newline-delimited JSON source
type Reader struct {
	r       io.Reader
	sc      *bufio.Scanner
	err     error
	line    int
	records int
	bytes   int64
	sampled bool // logs exactly one sample raw line per document
}

// NewReader creates a new Reader over r
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 512*1024)
	sc.Buffer(buf, maxScanTokenSize)
	return &Reader{r: r, sc: sc}
}

// Next returns the next record; io.EOF when done
func (rd *Reader) Next() (Record, error) {
	if rd.err != nil {
		return Record{}, rd.err
	}
	for {
		if !rd.sc.Scan() {
			if err := rd.sc.Err(); err != nil {
				code := perr.ErrorCodeFilesystem
				if errors.Is(err, bufio.ErrTooLong) {
					code = perr.ErrorCodeLoad
				}
				rd.err = perr.WithLine(perr.Wrapf(err, code, "read line %d", rd.line+1), rd.line+1)
				return Record{}, rd.err
			}
			rd.err = io.EOF
			return Record{}, io.EOF
		}
		rd.line++
		line := bytes.TrimSpace(rd.sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if !gjson.ValidBytes(line) {
			rd.err = perr.WithLine(perr.Loadf("malformed record on line %d: %s", rd.line, pstrings.TruncateUTF8(line, 120)), rd.line)
			return Record{}, rd.err
		}
		if line[0] != '{' {
			rd.err = perr.WithLine(perr.Loadf("record on line %d is not a JSON object: %s", rd.line, pstrings.TruncateUTF8(line, 120)), rd.line)
			return Record{}, rd.err
		}

		cp := make([]byte, len(line))
		copy(cp, line)
		rd.records++
		rd.bytes += int64(len(cp) + 1) // include newline

		if !rd.sampled {
			rd.sampled = true
			l := logger.Named("ndjson")
			l.Debug().
				Int("line_bytes", len(cp)).
				Str("sample_raw", pstrings.TruncateUTF8(cp, sampleRawMax)).
				Msg("ndjson: sample raw line")
		}

		return Record{Line: rd.line, Raw: cp}, nil
	}
}

// Stats returns the number of records read and their total bytes so far
func (rd *Reader) Stats() (records int, bytes int64) {
	return rd.records, rd.bytes
}

// Each calls fn for every record in order, stopping at the first error
func (rd *Reader) Each(fn func(Record) error) error {
	for {
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// ValidateFile checks every line of path and returns the record count
func ValidateFile(path string) (int, error) {
	f, err := open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	rd := NewReader(f)
	if err := rd.Each(func(Record) error { return nil }); err != nil {
		return 0, err
	}
	n, _ := rd.Stats()
	return n, nil
}

// ReadFile returns every record of path
func ReadFile(path string) ([]Record, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var out []Record
	err = NewReader(f).Each(func(r Record) error {
		out = append(out, r)
		return nil
	})
	return out, err
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err == nil {
		return f, nil
	}
	if os.IsNotExist(err) {
		return nil, perr.Wrapf(err, perr.ErrorCodeDataUnavailable, "%s not found", path)
	}
	return nil, perr.Wrapf(err, perr.ErrorCodeFilesystem, "open %s", path)
}
