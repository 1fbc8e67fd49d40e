package modkit

import (
	"bytes"
	"io"
	"testing"

	"evalsnap/internal/platform/store"
)

func TestDeps_ConsoleDefaultsToDiscard(t *testing.T) {
	t.Parallel()
	var d Deps
	if d.Console() != io.Discard {
		t.Fatal("zero-value Deps should write console output to io.Discard")
	}
}

func TestDeps_ConsoleUsesOut(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	d := Deps{Out: &buf}
	if d.Console() != &buf {
		t.Fatal("Console should return the configured writer")
	}
}

func TestDeps_OpenEngineIsBound(t *testing.T) {
	t.Parallel()
	d := Deps{Duck: store.DuckConfig{Threads: 1}}
	if d.OpenEngine() == nil {
		t.Fatal("OpenEngine returned a nil opener")
	}
}
