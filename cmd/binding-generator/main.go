// binding-generator writes BizTalk binding files for registered applications.
//
// Usage:
//
//	binding-generator generate -e ACC [--application KEY]... [--output DIR]
//	binding-generator check [--all-environments]
//	binding-generator list
//
// Applications and platform overrides register themselves from init
// functions; the packages declaring them are linked in with blank imports.
package main

import (
	"fmt"
	"os"

	_ "binding-generator/examples/sample"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
