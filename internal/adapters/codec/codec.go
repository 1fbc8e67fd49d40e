// Package codec decodes whole archive payloads in memory, choosing the
// compression format from the archive file extension
package codec

import (
	"bytes"
	"io"
	"path/filepath"
	"sort"
	"strings"

	perr "evalsnap/internal/platform/errors"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec turns a compressed byte blob into its plaintext and back
type Codec interface {
	Name() string
	Decompress(b []byte) ([]byte, error)
	Compress(b []byte) ([]byte, error)
}

// registry maps a file extension to its codec
var registry = map[string]Codec{
	".br":  Brotli{},
	".zst": Zstd{},
	".gz":  Gzip{},
	".lz4": LZ4{},
}

// Extensions lists the registered archive extensions, sorted
func Extensions() []string {
	out := make([]string, 0, len(registry))
	for ext := range registry {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// ForPath picks the codec for an archive by its extension
func ForPath(path string) (Codec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if c, ok := registry[ext]; ok {
		return c, nil
	}
	return nil, perr.WithField(
		perr.Newf(perr.ErrorCodeInvalidArgument, "unsupported archive extension %q (want one of %s)", ext, strings.Join(Extensions(), ", ")),
		"archive",
	)
}

// TrimExt returns path without its archive extension
func TrimExt(path string) string {
	if _, ok := registry[strings.ToLower(filepath.Ext(path))]; ok {
		return strings.TrimSuffix(path, filepath.Ext(path))
	}
	return path
}

// Brotli is the snapshot's native archive format
type Brotli struct{}

func (Brotli) Name() string { return "brotli" }

func (Brotli) Decompress(b []byte) ([]byte, error) {
	return readAll("brotli", brotli.NewReader(bytes.NewReader(b)))
}

func (Brotli) Compress(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.BestCompression)
	return finish(&buf, w, b)
}

// Zstd decodes zstandard frames
type Zstd struct{}

func (Zstd) Name() string { return "zstd" }

func (Zstd) Decompress(b []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDecompression, "zstd: init decoder")
	}
	defer dec.Close()
	out, err := dec.DecodeAll(b, nil)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDecompression, "zstd: corrupt stream")
	}
	return out, nil
}

func (Zstd) Compress(b []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "zstd: init encoder")
	}
	defer func() { _ = enc.Close() }()
	return enc.EncodeAll(b, nil), nil
}

// Gzip decodes single and multi-member gzip streams
type Gzip struct{}

func (Gzip) Name() string { return "gzip" }

func (Gzip) Decompress(b []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDecompression, "gzip: bad header")
	}
	defer func() { _ = zr.Close() }()
	return readAll("gzip", zr)
}

func (Gzip) Compress(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	return finish(&buf, gzip.NewWriter(&buf), b)
}

// LZ4 decodes lz4 frame format
type LZ4 struct{}

func (LZ4) Name() string { return "lz4" }

func (LZ4) Decompress(b []byte) ([]byte, error) {
	return readAll("lz4", lz4.NewReader(bytes.NewReader(b)))
}

func (LZ4) Compress(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	return finish(&buf, lz4.NewWriter(&buf), b)
}

func readAll(name string, r io.Reader) ([]byte, error) {
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDecompression, "%s: corrupt stream", name)
	}
	return out, nil
}

func finish(buf *bytes.Buffer, w io.WriteCloser, b []byte) ([]byte, error) {
	if _, err := w.Write(b); err != nil {
		_ = w.Close()
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "compress")
	}
	if err := w.Close(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "compress: flush")
	}
	return buf.Bytes(), nil
}
