// Package domain defines the types and ports of the prepare stage
package domain

// Tables of the prepared database
const (
	AnswerTable   = "answer_snapshot"
	QuestionTable = "question"
	PriceTable    = "model_price_icon"
)

// Input names the sources and the database to build
type Input struct {
	Document      string
	QuestionFiles []string
	PriceCSV      string
	Database      string
}

// Result reports row counts per table and the inputs that were skipped
type Result struct {
	Answers   int64
	Questions int64
	Prices    int64
	Skipped   []string
}
