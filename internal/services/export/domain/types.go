// Package domain defines the types and ports of the export stage
package domain

import "fmt"

// Limit caps how many records the exported document holds
const Limit = 10

// QuestionTable is the database table the default source reads
const QuestionTable = "question"

// Source selects where records are read from
type Source int

const (
	// SourceTable reads QuestionTable of the prepared database in insertion order
	SourceTable Source = iota
	// SourceParquet reads the columnar export file in file row order
	SourceParquet
)

func (s Source) String() string {
	switch s {
	case SourceTable:
		return "table"
	case SourceParquet:
		return "parquet"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// Input names the backing files and the document to write
type Input struct {
	Source   Source
	Database string
	Parquet  string
	Output   string
}

// Result reports what one run produced
type Result struct {
	Records int
	Source  Source
}
