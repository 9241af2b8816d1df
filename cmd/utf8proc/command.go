// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "flag"

// Command is a single utf8proc subcommand.
type Command struct {
	Run       func(cmd *Command, args []string) error
	UsageLine string
	Short     string

	Flag flag.FlagSet
}

// Name returns the command's name: the text before the first space in
// its usage line.
func (c *Command) Name() string {
	name := c.UsageLine
	for i, r := range name {
		if r == ' ' {
			return name[:i]
		}
	}
	return name
}
