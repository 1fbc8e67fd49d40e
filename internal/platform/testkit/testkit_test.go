package testkit

import (
	"path/filepath"
	"testing"
)

func TestMustPanic(t *testing.T) {
	t.Parallel()

	MustPanic(t, func() {
		panic("module convert: no port of type domain.RunnerPort")
	}, "convert", "RunnerPort")
}

func TestMustNotPanic(t *testing.T) {
	t.Parallel()

	MustNotPanic(t, func() {
		// no panic
	})
}

func TestMustContain(t *testing.T) {
	t.Parallel()

	haystack := "Average response time: 2.00 seconds"
	MustContain(t, haystack, "2.00")
}

func TestWriteReadFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	p := WriteFile(t, root, "external/snapshot.jsonl", []byte("{}\n"))
	if p != filepath.Join(root, "external", "snapshot.jsonl") {
		t.Fatalf("WriteFile path = %q", p)
	}
	if got := string(ReadFile(t, p)); got != "{}\n" {
		t.Fatalf("ReadFile = %q", got)
	}
	MustNotExist(t, filepath.Join(root, "public", "questions.json"))
}
