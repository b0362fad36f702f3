// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"fmt"
	"io"
	"os"
)

// Exit terminates the process with the status for err. It is the last
// call in main():
//
//	func main() { process.Exit(run()) }
func Exit(err error) {
	os.Exit(Report(os.Stderr, err))
}

// Report writes the message for err to w, if any, and returns the exit
// status it maps to.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if coder, ok := err.(interface{ ExitCode() int }); ok {
		return coder.ExitCode()
	}
	fmt.Fprintf(w, "error: %v\n", err)
	return 1
}
