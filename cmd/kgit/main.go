// Command kgit is a CLI driver over the repository/ginternals packages:
// a small, read-mostly subset of git's plumbing and porcelain.
package main

import (
	"fmt"
	"os"

	"github.com/kgit-project/kgit/env"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	root := newRootCmd(cwd, env.NewFromOs())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
