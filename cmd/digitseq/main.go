// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

// Command digitseq locates digit strings in the sequence
// 123456789101112131415... and reads digits back out of it.
//
// Usage:
//
//	digitseq index N...
//	digitseq find [--explain] S...
//	digitseq digit POS [COUNT]
//	digitseq batch FILE
//	digitseq crosscheck [--max-len N]
//
// Settings come from flags, DIGITSEQ_* environment variables such as
// DIGITSEQ_OUTPUT_FORMAT, or a YAML file given with --config.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
