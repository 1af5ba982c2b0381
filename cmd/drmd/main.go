// Package main provides the drmd CLI, a form-driven editor for digital
// reference material documents. Editing state lives in named sessions;
// documents are imported from and exported to namespaced XML.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
