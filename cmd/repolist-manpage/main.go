package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/repolist/cmd/repolist"
	"github.com/arthur-debert/repolist/internal/version"
)

func main() {
	rootCmd := repolist.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "REPOLIST",
		Section: "1",
		Source:  "repolist " + version.Version,
		Manual:  "repolist manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
