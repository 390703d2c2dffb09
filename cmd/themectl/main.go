// Command themectl inspects the built-in preset catalog, validates and
// converts theme files and mints development tokens for authdeck.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
