package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/gradlepatch/cmd/gradlepatch"
	"github.com/arthur-debert/gradlepatch/internal/version"
)

func main() {
	rootCmd := gradlepatch.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "GRADLEPATCH",
		Section: "1",
		Source:  "gradlepatch " + version.Version,
		Manual:  "gradlepatch manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
