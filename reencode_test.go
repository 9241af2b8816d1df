// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8proc

import "testing"

// These exercise Reencode directly, as a standalone primitive over a
// buffer that was never run through Decompose's own option set — the
// legitimate standalone use spec.md §4.5 describes, where STRIPCC/NLF2x
// apply only at re-encode time regardless of what options (if any) built
// the buffer.

func TestReencodeStripccNlf2lfFoldsCRLF(t *testing.T) {
	buf := []rune{'a', 0x000D, 0x000A, 'b'}
	out, err := Reencode(buf, STRIPCC|NLF2LF)
	if err != nil {
		t.Fatalf("Reencode: %v", err)
	}
	if string(out[:len(out)-1]) != "a\nb" {
		t.Errorf("Reencode(STRIPCC|NLF2LF) on [a, CR, LF, b] = %q, want %q", out, "a\nb")
	}
}

func TestReencodeNoNlfOptionsLeavesCRLFAlone(t *testing.T) {
	buf := []rune{'a', 0x000D, 0x000A, 'b'}
	out, err := Reencode(buf, 0)
	if err != nil {
		t.Fatalf("Reencode: %v", err)
	}
	if string(out[:len(out)-1]) != "a\r\nb" {
		t.Errorf("Reencode with no NLF/STRIPCC option = %q, want %q (CR must survive)", out, "a\r\nb")
	}
}

func TestReencodeStripccWithoutNlfCollapsesToSpace(t *testing.T) {
	buf := []rune{'a', 0x000A, 'b'}
	out, err := Reencode(buf, STRIPCC)
	if err != nil {
		t.Fatalf("Reencode: %v", err)
	}
	if string(out[:len(out)-1]) != "a b" {
		t.Errorf("Reencode(STRIPCC) on [a, LF, b] = %q, want %q", out, "a b")
	}
}

func TestReencodeDoesNotReorder(t *testing.T) {
	// Reencode trusts its caller to have already canonically reordered
	// buf (that is Decompose's job per spec.md §4.4); an out-of-order
	// buffer passed straight to Reencode must come back out of order.
	buf := []rune{'A', 0x0301, 0x0316}
	out, err := Reencode(buf, 0)
	if err != nil {
		t.Fatalf("Reencode: %v", err)
	}
	want := string([]rune{'A', 0x0301, 0x0316})
	if string(out[:len(out)-1]) != want {
		t.Errorf("Reencode reordered a buffer it should have left alone: got %q, want %q", out, want)
	}
}

func TestReencodeTrailingNul(t *testing.T) {
	out, err := Reencode([]rune{'a'}, 0)
	if err != nil {
		t.Fatalf("Reencode: %v", err)
	}
	if len(out) != 2 || out[len(out)-1] != 0 {
		t.Errorf("Reencode(\"a\") = %v, want a trailing NUL not counted by the caller's slicing", out)
	}
}
