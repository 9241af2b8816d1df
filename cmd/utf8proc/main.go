// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command utf8proc normalizes UTF-8 text read from stdin and writes the
// result to stdout, or reports per-codepoint properties.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/AliKet/utf8proc"
)

var commands = []*Command{
	cmdNfc,
	cmdNfd,
	cmdNfkc,
	cmdNfkd,
	cmdMap,
	cmdWidth,
	cmdGraphemes,
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("utf8proc: ")

	if len(os.Args) < 2 {
		usage()
	}
	name := os.Args[1]
	for _, cmd := range commands {
		if cmd.Name() == name {
			cmd.Flag.Usage = func() { fmt.Fprintln(os.Stderr, cmd.UsageLine) }
			cmd.Flag.Parse(os.Args[2:])
			if err := cmd.Run(cmd, cmd.Flag.Args()); err != nil {
				log.Fatal(err)
			}
			return
		}
	}
	usage()
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: utf8proc command [arguments]")
	fmt.Fprintln(os.Stderr, "commands:")
	for _, cmd := range commands {
		fmt.Fprintf(os.Stderr, "\t%-12s %s\n", cmd.Name(), cmd.Short)
	}
	os.Exit(2)
}

func readAll() ([]byte, error) {
	return io.ReadAll(os.Stdin)
}

func runForm(form utf8proc.Form) func(*Command, []string) error {
	return func(cmd *Command, args []string) error {
		in, err := readAll()
		if err != nil {
			return err
		}
		os.Stdout.Write(form.Bytes(in))
		return nil
	}
}

var cmdNfc = &Command{
	Run:       runForm(utf8proc.NFC),
	UsageLine: "nfc",
	Short:     "normalize stdin to NFC",
}

var cmdNfd = &Command{
	Run:       runForm(utf8proc.NFD),
	UsageLine: "nfd",
	Short:     "normalize stdin to NFD",
}

var cmdNfkc = &Command{
	Run:       runForm(utf8proc.NFKC),
	UsageLine: "nfkc",
	Short:     "normalize stdin to NFKC",
}

var cmdNfkd = &Command{
	Run:       runForm(utf8proc.NFKD),
	UsageLine: "nfkd",
	Short:     "normalize stdin to NFKD",
}
