// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8proc

import (
	"reflect"
	"testing"
)

func TestDecomposeCharCanonical(t *testing.T) {
	got, err := DecomposeChar(0x00C1, STABLE|DECOMPOSE, new(BoundClass)) // Á
	if err != nil {
		t.Fatalf("DecomposeChar: %v", err)
	}
	want := []rune{'A', 0x0301}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecomposeChar(Á) = %v, want %v", got, want)
	}
}

func TestDecomposeCharCompatOnlyUnderCompat(t *testing.T) {
	lastBC := new(BoundClass)
	got, err := DecomposeChar(0xFB01, STABLE|DECOMPOSE, lastBC) // "fi" ligature
	if err != nil {
		t.Fatalf("DecomposeChar: %v", err)
	}
	if !reflect.DeepEqual(got, []rune{0xFB01}) {
		t.Errorf("without COMPAT, compatibility ligature should pass through unchanged, got %v", got)
	}

	*lastBC = BoundStart
	got, err = DecomposeChar(0xFB01, STABLE|DECOMPOSE|COMPAT, lastBC)
	if err != nil {
		t.Fatalf("DecomposeChar: %v", err)
	}
	if !reflect.DeepEqual(got, []rune{'f', 'i'}) {
		t.Errorf("with COMPAT, ligature should decompose, got %v", got)
	}
}

func TestDecomposeCharCasefold(t *testing.T) {
	got, err := DecomposeChar('A', STABLE|DECOMPOSE|CASEFOLD, new(BoundClass))
	if err != nil {
		t.Fatalf("DecomposeChar: %v", err)
	}
	if !reflect.DeepEqual(got, []rune{'a'}) {
		t.Errorf("CASEFOLD('A') = %v, want ['a']", got)
	}
}

func TestDecomposeCharStripmark(t *testing.T) {
	got, err := DecomposeChar(0x0301, STABLE|DECOMPOSE|STRIPMARK, new(BoundClass))
	if err != nil {
		t.Fatalf("DecomposeChar: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("STRIPMARK should drop a combining mark entirely, got %v", got)
	}
}

func TestDecomposeCharRejectna(t *testing.T) {
	_, err := DecomposeChar(0x0530, STABLE|DECOMPOSE|REJECTNA, new(BoundClass)) // unassigned
	if err != ErrNotAssigned {
		t.Errorf("DecomposeChar on an unassigned codepoint with REJECTNA = %v, want ErrNotAssigned", err)
	}
}

func TestDecomposeCharHangul(t *testing.T) {
	got, err := DecomposeChar(0xAC01, STABLE|DECOMPOSE, new(BoundClass)) // 각 = LVT
	if err != nil {
		t.Fatalf("DecomposeChar: %v", err)
	}
	want := []rune{0x1100, 0x1161, 0x11A8}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecomposeChar(0xAC01) = %v, want %v", got, want)
	}
}

func TestDecomposeString(t *testing.T) {
	runes, err := Decompose([]byte("Á"), STABLE|DECOMPOSE)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	if !reflect.DeepEqual(runes, []rune{'A', 0x0301}) {
		t.Errorf("Decompose(\"Á\") = %v, want [A, U+0301]", runes)
	}
}

func TestDecomposeCanonicallyReorders(t *testing.T) {
	// U+0301 (acute, ccc 230) before U+0316 (grave below, ccc 220) is out
	// of canonical order; Decompose itself — not Map/Reencode — must fix
	// this, per spec.md §4.4 ("After all codepoints are emitted, performs
	// canonical reordering").
	runes, err := Decompose([]byte(string([]rune{'A', 0x0301, 0x0316})), STABLE|DECOMPOSE)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	want := []rune{'A', 0x0316, 0x0301}
	if !reflect.DeepEqual(runes, want) {
		t.Errorf("Decompose([A, acute, grave-below]) = %v, want %v (reordered by combining class)", runes, want)
	}
}

func TestDecomposeDoesNotFoldCRLF(t *testing.T) {
	// CRLF collapsing is Reencode's post-processing step (spec.md §4.5
	// step 1), not Decompose's: Decompose must pass CR and LF through as
	// two separate codepoints even when NLF2LF is set, since decompose's
	// documented option list never mentions NLF handling.
	runes, err := Decompose([]byte("a\r\nb"), STABLE|DECOMPOSE|NLF2LF)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	want := []rune{'a', 0x000D, 0x000A, 'b'}
	if !reflect.DeepEqual(runes, want) {
		t.Errorf("Decompose(\"a\\r\\nb\") with NLF2LF = %v, want %v (CR/LF untouched)", runes, want)
	}
}

func TestDecomposePlainCRLFSurvivesWithNoNLFOptions(t *testing.T) {
	// With no NLF2x/STRIPCC option at all, an ordinary CRLF-terminated
	// line must not be corrupted anywhere in the pipeline.
	runes, err := Decompose([]byte("a\r\nb"), STABLE|DECOMPOSE)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	want := []rune{'a', 0x000D, 0x000A, 'b'}
	if !reflect.DeepEqual(runes, want) {
		t.Errorf("Decompose(\"a\\r\\nb\") with no options = %v, want %v", runes, want)
	}

	out, err := Map([]byte("a\r\nb"), STABLE|DECOMPOSE)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if string(out) != "a\r\nb" {
		t.Errorf("Map(\"a\\r\\nb\") with no NLF/STRIPCC option = %q, want %q (CR must survive)", out, "a\r\nb")
	}
}

func TestMapCRLFFolding(t *testing.T) {
	out, err := Map([]byte("a\r\nb"), STABLE|DECOMPOSE|NLF2LF)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if string(out) != "a\nb" {
		t.Errorf("Map(\"a\\r\\nb\") with NLF2LF = %q, want %q (CR should fold into the following LF)", out, "a\nb")
	}
}

func TestMapNFCRoundTrip(t *testing.T) {
	out, err := Map([]byte("Á"), STABLE|COMPOSE)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if string(out) != "Á" {
		t.Errorf("Map(STABLE|COMPOSE) on already-composed input = %q, want %q", out, "Á")
	}
}

func TestMapComposeFromDecomposed(t *testing.T) {
	decomposed := string([]rune{'A', 0x0301})
	out, err := Map([]byte(decomposed), STABLE|COMPOSE)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if string(out) != "Á" {
		t.Errorf("Map(STABLE|COMPOSE)(%q) = %q, want %q", decomposed, out, "Á")
	}
}

func TestMapStripcc(t *testing.T) {
	out, err := Map([]byte("a\x01b"), STABLE|DECOMPOSE|STRIPCC)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if string(out) != "ab" {
		t.Errorf("Map with STRIPCC = %q, want %q", out, "ab")
	}
}

func TestMapStripccWithoutNLFCollapsesNewlineToSpace(t *testing.T) {
	out, err := Map([]byte("a\nb"), STABLE|DECOMPOSE|STRIPCC)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if string(out) != "a b" {
		t.Errorf("Map with STRIPCC and no NLF policy = %q, want %q (newline collapses to a space rather than vanishing)", out, "a b")
	}
}

func TestNewConfigRejectsInvalidCombinations(t *testing.T) {
	if _, err := newConfig(COMPOSE | DECOMPOSE); err != ErrInvalidOpts {
		t.Errorf("COMPOSE|DECOMPOSE: got %v, want ErrInvalidOpts", err)
	}
	if _, err := newConfig(STRIPMARK); err != ErrInvalidOpts {
		t.Errorf("STRIPMARK alone: got %v, want ErrInvalidOpts", err)
	}
	if _, err := newConfig(STABLE | DECOMPOSE | STRIPMARK); err != nil {
		t.Errorf("STRIPMARK with DECOMPOSE: unexpected error %v", err)
	}
}
