// Package domain defines the types and ports of the expand stage
package domain

// Input names the archive to read and the document to publish
type Input struct {
	Archive string
	Output  string
}

// Result reports what one run produced
type Result struct {
	Codec           string
	CompressedBytes int
	OutputBytes     int
}
