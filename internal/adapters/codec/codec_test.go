package codec

import (
	"bytes"
	"strings"
	"testing"

	perr "evalsnap/internal/platform/errors"
)

var plain = []byte(strings.Repeat(`{"_id":"gpt-4o:exam:dataset/onet_m6_math.jsonl:1","result":{"time":1234}}`+"\n", 50))

func TestRoundTrip_AllCodecs(t *testing.T) {
	for _, ext := range Extensions() {
		c, err := ForPath("external/snapshot.jsonl" + ext)
		if err != nil {
			t.Fatalf("ForPath(%s): %v", ext, err)
		}
		packed, err := c.Compress(plain)
		if err != nil {
			t.Fatalf("%s compress: %v", c.Name(), err)
		}
		got, err := c.Decompress(packed)
		if err != nil {
			t.Fatalf("%s decompress: %v", c.Name(), err)
		}
		if !bytes.Equal(got, plain) {
			t.Fatalf("%s round-trip mismatch: %d bytes vs %d", c.Name(), len(got), len(plain))
		}
	}
}

func TestRoundTrip_Empty(t *testing.T) {
	for _, c := range []Codec{Brotli{}, Zstd{}, Gzip{}, LZ4{}} {
		packed, err := c.Compress(nil)
		if err != nil {
			t.Fatalf("%s compress empty: %v", c.Name(), err)
		}
		got, err := c.Decompress(packed)
		if err != nil || len(got) != 0 {
			t.Fatalf("%s empty round-trip = %q, %v", c.Name(), got, err)
		}
	}
}

func TestDecompress_TruncatedIsDecompressionError(t *testing.T) {
	for _, c := range []Codec{Brotli{}, Zstd{}, Gzip{}, LZ4{}} {
		packed, err := c.Compress(plain)
		if err != nil {
			t.Fatalf("%s compress: %v", c.Name(), err)
		}
		_, err = c.Decompress(packed[:len(packed)/2])
		if !perr.IsCode(err, perr.ErrorCodeDecompression) {
			t.Fatalf("%s truncated: want DecompressionError, got %v", c.Name(), err)
		}
	}
}

func TestDecompress_GarbageHeader(t *testing.T) {
	for _, c := range []Codec{Gzip{}, Zstd{}, LZ4{}} {
		if _, err := c.Decompress([]byte("definitely not compressed")); !perr.IsCode(err, perr.ErrorCodeDecompression) {
			t.Fatalf("%s garbage: want DecompressionError, got %v", c.Name(), err)
		}
	}
}

func TestForPath(t *testing.T) {
	cases := map[string]string{
		"external/snapshot.jsonl.br":  "brotli",
		"external/snapshot.jsonl.BR":  "brotli",
		"external/snapshot.jsonl.zst": "zstd",
		"x.gz":                        "gzip",
		"x.lz4":                       "lz4",
	}
	for path, want := range cases {
		c, err := ForPath(path)
		if err != nil || c.Name() != want {
			t.Fatalf("ForPath(%q) = %v, %v; want %s", path, c, err, want)
		}
	}
	_, err := ForPath("external/snapshot.jsonl.xz")
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("unknown ext: want InvalidArgument, got %v", err)
	}
}

func TestTrimExt(t *testing.T) {
	if got := TrimExt("external/snapshot.jsonl.br"); got != "external/snapshot.jsonl" {
		t.Fatalf("TrimExt = %q", got)
	}
	if got := TrimExt("external/snapshot.jsonl"); got != "external/snapshot.jsonl" {
		t.Fatalf("TrimExt no-op = %q", got)
	}
}
