// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8proc

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// runeSlot pairs a codepoint with its combining class. The pipeline does
// not use it: the intermediate codepoint buffer is a plain []rune, and
// canonicalReorder keeps combining classes in a parallel []uint8 that it
// computes afresh on each call.
type runeSlot struct {
	cp  rune
	ccc uint8
}

// pendingStack is the explicit worklist decomposeChar threads instead of
// recursing through Go's call stack when a mapping expands to further
// mappings: a loop-based rewrite using a worklist avoids relying on
// call-stack depth for pathological input. Mapping expansions are pushed
// in reverse order so popping reproduces left-to-right processing order.
type pendingStack struct {
	s *arraystack.Stack
}

func newPendingStack(cp rune) *pendingStack {
	s := arraystack.New()
	s.Push(cp)
	return &pendingStack{s: s}
}

func (p *pendingStack) pushSequence(seq []rune) {
	for i := len(seq) - 1; i >= 0; i-- {
		p.s.Push(seq[i])
	}
}

func (p *pendingStack) pop() (rune, bool) {
	v, ok := p.s.Pop()
	if !ok {
		return 0, false
	}
	return v.(rune), true
}
