// Package ndjson reads and writes newline-delimited JSON documents one record per line
//
// Design choices:
// - Stream with bufio.Scanner but with a 64MB cap so long model transcripts fit on one line.
// - Strict: a line that is not a single JSON object fails the read with its line number.
// - Blank and whitespace-only lines are skipped and do not count as records.
// - Records stay raw JSON; callers pick fields with gjson.
package ndjson
