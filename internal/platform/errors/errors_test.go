package errors

import (
	stderrs "errors"
	"fmt"
	"testing"
)

func TestExitStatusMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeUnknown, 1},
		{ErrorCodeInvalidArgument, 2},
		{ErrorCodeDecompression, 3},
		{ErrorCodeLoad, 4},
		{ErrorCodeQuery, 5},
		{ErrorCodeDataUnavailable, 6},
		{ErrorCodeFilesystem, 7},
		{9999, 1}, // default branch
	}
	for _, c := range cases {
		if got := ExitStatus(c.code); got != c.want {
			t.Fatalf("ExitStatus(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestCodeString(t *testing.T) {
	cases := map[ErrorCode]string{
		ErrorCodeDecompression:   "DecompressionError",
		ErrorCodeLoad:            "LoadError",
		ErrorCodeQuery:           "QueryError",
		ErrorCodeDataUnavailable: "DataUnavailableError",
		ErrorCodeFilesystem:      "FilesystemError",
		ErrorCodeInvalidArgument: "InvalidArgument",
		ErrorCodeUnknown:         "Unknown",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", code, got, want)
		}
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Fatalf("ExitCode(nil) must be 0")
	}
	if got := ExitCode(stderrs.New("foreign")); got != 1 {
		t.Fatalf("ExitCode(foreign) = %d, want 1", got)
	}
	wrapped := fmt.Errorf("stage: %w", Loadf("line %d", 3))
	if got := ExitCode(wrapped); got != 4 {
		t.Fatalf("ExitCode(wrapped load) = %d, want 4", got)
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	e1 := New(ErrorCodeQuery, "bad sql")
	if CodeOf(e1) != ErrorCodeQuery {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeLoad, "bad line %d", 12)
	if got := e2.Error(); got != "bad line 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeFilesystem, "write failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	e4 := Wrapf(src, ErrorCodeDecompression, "decode %s", "snapshot.jsonl.br")
	if want := "decode snapshot.jsonl.br: root"; e4.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e4.Error(), want)
	}

	if got, ok := As(e4); !ok || got.Code() != ErrorCodeDecompression {
		t.Fatalf("As() failed for our error")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	// copy-on-write mutators
	e5 := Wrap(src, ErrorCodeLoad, "oops")
	e6 := WithField(e5, "result.time")
	e7 := WithOp(e6, "validate")
	e8 := WithLine(e7, 42)
	if fe, ok := As(e6); !ok || fe.Field() != "result.time" {
		t.Fatalf("WithField failed")
	}
	if oe, ok := As(e7); !ok || oe.Op() != "validate" {
		t.Fatalf("WithOp failed")
	}
	if le, ok := As(e8); !ok || le.Line() != 42 {
		t.Fatalf("WithLine failed")
	}
	if fe0, _ := As(e5); fe0.Field() != "" || fe0.Op() != "" || fe0.Line() != 0 {
		t.Fatalf("copy-on-write mutated original")
	}
	if WithLine(src, 3) != src {
		t.Fatalf("WithLine must leave foreign errors unchanged")
	}

	if !IsCode(InvalidArgf("x"), ErrorCodeInvalidArgument) ||
		!IsCode(Decompressionf("x"), ErrorCodeDecompression) ||
		!IsCode(Loadf("x"), ErrorCodeLoad) ||
		!IsCode(Queryf("x"), ErrorCodeQuery) ||
		!IsCode(DataUnavailablef("x"), ErrorCodeDataUnavailable) ||
		!IsCode(Filesystemf("x"), ErrorCodeFilesystem) ||
		!IsCode(Internalf("x"), ErrorCodeUnknown) {
		t.Fatalf("sugar helpers code mismatch")
	}

	if WrapIf(nil, ErrorCodeQuery, "ignored") != nil {
		t.Fatalf("WrapIf(nil) should return nil")
	}
	if WrapIf(src, ErrorCodeQuery, "q") == nil {
		t.Fatalf("WrapIf(non-nil) should wrap")
	}

	deep := fmt.Errorf("level2: %w", fmt.Errorf("level1: %w", src))
	if got := Root(deep); got == nil || got.Error() != "root" {
		t.Fatalf("Root() failed, got %v", got)
	}
}
