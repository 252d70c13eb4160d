package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunAppendPrintQuit(t *testing.T) {
	in := strings.NewReader("1,2c\nfirst\nsecond\n.\n1,3p\nq\n")
	var out, errOut bytes.Buffer
	code := run(in, &out, &errOut)
	if code != 0 {
		t.Fatalf("code = %d, stderr = %q", code, errOut.String())
	}
	want := "first\nsecond\n.\n"
	if out.String() != want {
		t.Fatalf("out = %q, want %q", out.String(), want)
	}
}

func TestRunUndoRedoRoundTrip(t *testing.T) {
	in := strings.NewReader("1,1c\nA\n.\n1,1c\nB\n.\n1u\n1,1p\n1r\n1,1p\nq\n")
	var out, errOut bytes.Buffer
	code := run(in, &out, &errOut)
	if code != 0 {
		t.Fatalf("code = %d, stderr = %q", code, errOut.String())
	}
	want := "A\nB\n"
	if out.String() != want {
		t.Fatalf("out = %q, want %q", out.String(), want)
	}
}

func TestRunStreamEndsWithoutQuitExitsZero(t *testing.T) {
	in := strings.NewReader("1,1c\nA\n.\n1,1p\n")
	var out, errOut bytes.Buffer
	code := run(in, &out, &errOut)
	if code != 0 {
		t.Fatalf("code = %d, stderr = %q", code, errOut.String())
	}
	if out.String() != "A\n" {
		t.Fatalf("out = %q", out.String())
	}
}

func TestRunMalformedCommandExitsNonzero(t *testing.T) {
	in := strings.NewReader("1p\n")
	var out, errOut bytes.Buffer
	code := run(in, &out, &errOut)
	if code == 0 {
		t.Fatalf("code = 0, want nonzero for malformed input")
	}
	if errOut.Len() == 0 {
		t.Fatalf("expected diagnostic on stderr")
	}
}
