// Package columnar reads Parquet exports back through Apache Arrow
package columnar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	perr "evalsnap/internal/platform/errors"
	pstrings "evalsnap/internal/platform/strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

const (
	// maxCell bounds rendered cell width
	maxCell = 48

	// batchRows is the record size the reader hands back; zero would read nothing
	batchRows = 1024
)

// File is an open Parquet file with an Arrow view over it
type File struct {
	path string
	f    *os.File
	pf   *file.Reader
	ar   *pqarrow.FileReader
}

// Open opens path for reading; a missing file is DataUnavailable and a file
// that is not valid Parquet is a LoadError
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perr.Wrapf(err, perr.ErrorCodeDataUnavailable, "%s not found", path)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeFilesystem, "open %s", path)
	}
	pf, err := file.NewParquetReader(f)
	if err != nil {
		_ = f.Close()
		return nil, perr.Wrapf(err, perr.ErrorCodeLoad, "read parquet footer of %s", path)
	}
	ar, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{BatchSize: batchRows}, nil)
	if err != nil {
		_ = pf.Close()
		_ = f.Close()
		return nil, perr.Wrapf(err, perr.ErrorCodeLoad, "arrow view of %s", path)
	}
	return &File{path: path, f: f, pf: pf, ar: ar}, nil
}

// Close releases the file
func (c *File) Close() error {
	if c == nil || c.pf == nil {
		return nil
	}
	err := c.pf.Close()
	if ferr := c.f.Close(); ferr != nil && !errors.Is(ferr, os.ErrClosed) && err == nil {
		err = ferr
	}
	return err
}

// NumRows is the row count from the footer
func (c *File) NumRows() int64 { return c.pf.NumRows() }

// NumRowGroups is the row group count from the footer
func (c *File) NumRowGroups() int { return c.pf.NumRowGroups() }

// Columns returns the top-level column names in schema order
func (c *File) Columns() ([]string, error) {
	sc, err := c.ar.Schema()
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeLoad, "schema of %s", c.path)
	}
	out := make([]string, sc.NumFields())
	for i, f := range sc.Fields() {
		out[i] = f.Name
	}
	return out, nil
}

// Table is a rendered slice of rows
type Table struct {
	Columns []string
	Rows    [][]string
}

// Head renders the first n rows in file order
func (c *File) Head(ctx context.Context, n int) (Table, error) {
	cols, err := c.Columns()
	if err != nil {
		return Table{}, err
	}
	t := Table{Columns: cols}
	if n <= 0 || c.NumRows() == 0 {
		return t, nil
	}
	rr, err := c.ar.GetRecordReader(ctx, nil, nil)
	if err != nil {
		return Table{}, perr.Wrapf(err, perr.ErrorCodeLoad, "record reader of %s", c.path)
	}
	defer rr.Release()

	for len(t.Rows) < n && rr.Next() {
		t.Rows = appendRows(t.Rows, rr.Record(), n)
	}
	if err := rr.Err(); err != nil && !errors.Is(err, io.EOF) {
		return Table{}, perr.Wrapf(err, perr.ErrorCodeLoad, "read %s", c.path)
	}
	return t, nil
}

func appendRows(rows [][]string, rec arrow.Record, limit int) [][]string {
	for i := 0; i < int(rec.NumRows()) && len(rows) < limit; i++ {
		row := make([]string, rec.NumCols())
		for j := 0; j < int(rec.NumCols()); j++ {
			col := rec.Column(j)
			if col.IsNull(i) {
				row[j] = "null"
				continue
			}
			row[j] = col.ValueStr(i)
		}
		rows = append(rows, row)
	}
	return rows
}

// Render prints t as an aligned table with a leading row index
func (t Table) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := append([]string{""}, t.Columns...)
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return err
	}
	for i, r := range t.Rows {
		cells := make([]string, 0, len(r)+1)
		cells = append(cells, fmt.Sprint(i))
		for _, v := range r {
			cells = append(cells, pstrings.Clip(pstrings.OneLine(v), maxCell))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}
