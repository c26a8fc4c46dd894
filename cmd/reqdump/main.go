// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command reqdump builds an HTTP request from its arguments and prints
// it the way it would be sent, without sending it.
//
// Usage:
//
//	reqdump [--body BODY] [--no-color] [--verbose] [METHOD] URL [NAME:VALUE ...]
//
// Headers are applied in argument order. When the same header name is
// given twice the first value is kept. A body of the form @file is read
// from file, and a body of - is read from standard input.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

func main() {
	env := environment{
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		enableColor: isatty.IsTerminal(os.Stdout.Fd()),
	}
	if err := Main(os.Args, env); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
