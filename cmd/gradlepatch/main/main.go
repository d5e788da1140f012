package main

import (
	"os"

	"github.com/arthur-debert/gradlepatch/cmd/gradlepatch"
)

func main() {
	os.Exit(gradlepatch.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
