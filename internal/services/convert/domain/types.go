// Package domain defines the types and ports of the convert stage
package domain

// Table is the engine table the snapshot document is materialized into
const Table = "snapshot"

// Input names the document to load and the columnar file to publish
type Input struct {
	Document string
	Parquet  string
}

// Stats are the summary figures printed to the operator.
// A nil average means no record carried that field.
type Stats struct {
	AvgResponseTimeSeconds *float64
	AvgTokensUsed          *float64
	TotalEvaluations       int64
}

// Result reports what one run produced
type Result struct {
	Records int
	Stats   Stats
}
