// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8proc

import "testing"

func TestGraphemeBreak(t *testing.T) {
	tests := []struct {
		name      string
		cp1, cp2  rune
		wantBreak bool
	}{
		{"CR then LF does not break", '\r', '\n', false},
		{"LF then letter breaks", '\n', 'A', true},
		{"letter then control breaks", 'A', 0x01, true},
		{"letter then combining mark does not break", 'A', 0x0301, false},
		{"two plain letters break", 'A', 'B', true},
		{"Hangul L then V does not break", 0x1100, 0x1161, false},
		{"Hangul V then T does not break", 0x1161, 0x11A8, false},
		{"Hangul T then T does not break", 0x11A8, 0x11A9, false},
	}
	for _, tc := range tests {
		if got := GraphemeBreak(tc.cp1, tc.cp2); got != tc.wantBreak {
			t.Errorf("%s: GraphemeBreak(%#x, %#x) = %v, want %v", tc.name, tc.cp1, tc.cp2, got, tc.wantBreak)
		}
	}
}

func TestHangulBoundClassSyllables(t *testing.T) {
	if hangulBoundClass(0xAC00) != BoundLV {
		t.Error("0xAC00 (가) should be an LV syllable")
	}
	if hangulBoundClass(0xAC01) != BoundLVT {
		t.Error("0xAC01 (각) should be an LVT syllable")
	}
}

func TestCharboundInsertsMarkerAtBoundaries(t *testing.T) {
	lastBC := BoundStart
	out, err := DecomposeChar('A', STABLE|DECOMPOSE|CHARBOUND, &lastBC)
	if err != nil {
		t.Fatalf("DecomposeChar: %v", err)
	}
	if len(out) == 0 || out[len(out)-1] != 'A' {
		t.Fatalf("expected 'A' in output, got %v", out)
	}
	// A combining mark right after a letter is within the same cluster,
	// so no marker should be inserted before it.
	out2, err := DecomposeChar(0x0301, STABLE|DECOMPOSE|CHARBOUND, &lastBC)
	if err != nil {
		t.Fatalf("DecomposeChar: %v", err)
	}
	if len(out2) != 1 || out2[0] != 0x0301 {
		t.Errorf("combining mark after a letter should not get a boundary marker: got %v", out2)
	}
}
