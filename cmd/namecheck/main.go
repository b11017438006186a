// SPDX-License-Identifier: MIT

// Command namecheck reports naming-convention violations in Go packages.
//
// Usage:
//
//	namecheck [-json] [-dir path] [packages...]
//
// Patterns default to ./... . The exit code is 1 when violations are found,
// 2 on load errors, so CI can gate on it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/AhmedFarag1/go-clean-code/internal/namecheck"
)

func main() {
	jsonOut := flag.Bool("json", false, "emit findings as JSON")
	dir := flag.String("dir", ".", "directory to load packages from")
	flag.Parse()

	violations, err := namecheck.Check(*dir, flag.Args()...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "namecheck:", err)
		os.Exit(2)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(violations); err != nil {
			fmt.Fprintln(os.Stderr, "namecheck:", err)
			os.Exit(2)
		}
	} else {
		for _, v := range violations {
			fmt.Println(v)
		}
	}

	if len(violations) > 0 {
		fmt.Fprintf(os.Stderr, "namecheck: %d violation(s)\n", len(violations))
		os.Exit(1)
	}
}
