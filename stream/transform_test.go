// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stream

import (
	"testing"

	"github.com/AliKet/utf8proc"
)

func TestNormalizerTransformAtEOF(t *testing.T) {
	n := Normalizer{Form: utf8proc.NFC}
	src := []byte(string([]rune{'A', 0x0301})) // decomposed Á
	dst := make([]byte, 16)

	nDst, nSrc, err := n.Transform(dst, src, true)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if nSrc != len(src) {
		t.Errorf("nSrc = %d, want %d (all of src consumed at EOF)", nSrc, len(src))
	}
	if got := string(dst[:nDst]); got != "Á" {
		t.Errorf("Transform output = %q, want %q", got, "Á")
	}
}

func TestNormalizerTransformHoldsBackTrailingNonStarter(t *testing.T) {
	n := Normalizer{Form: utf8proc.NFC}
	src := []byte("A" + string(rune(0x0301))) // 'A' then a combining mark, more may follow
	dst := make([]byte, 16)

	_, _, err := n.Transform(dst, src, false)
	if err != ErrShortSrc {
		t.Errorf("Transform on a starter immediately followed by an open combining run: err = %v, want ErrShortSrc (no boundary is known safe yet)", err)
	}
}

func TestNormalizerTransformConsumesUpToLastStarter(t *testing.T) {
	n := Normalizer{Form: utf8proc.NFC}
	src := []byte("AB" + string(rune(0x0301))) // A, then a starter B with a trailing open mark
	dst := make([]byte, 16)

	nDst, nSrc, err := n.Transform(dst, src, false)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if nSrc != 1 {
		t.Errorf("nSrc = %d, want 1: only the leading 'A' is a safe starter boundary", nSrc)
	}
	if string(dst[:nDst]) != "A" {
		t.Errorf("Transform output = %q, want %q", dst[:nDst], "A")
	}
}

func TestNormalizerTransformShortDst(t *testing.T) {
	n := Normalizer{Form: utf8proc.NFC}
	src := []byte("hello")
	dst := make([]byte, 2)

	_, _, err := n.Transform(dst, src, true)
	if err != ErrShortDst {
		t.Errorf("Transform with too-small dst: err = %v, want ErrShortDst", err)
	}
}

func TestNormalizerTransformShortSrc(t *testing.T) {
	n := Normalizer{Form: utf8proc.NFC}
	src := []byte(string(rune(0x0301))) // a lone combining mark, no starter at all
	dst := make([]byte, 16)

	_, _, err := n.Transform(dst, src, false)
	if err != ErrShortSrc {
		t.Errorf("Transform with no starter boundary and atEOF=false: err = %v, want ErrShortSrc", err)
	}
}
