package main

import (
	"fmt"
	"os"

	"filechooser/internal/errors"
)

var version = "dev"

func main() {
	rootCmd := NewRootCmd()
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCancelled) && !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, errorText(err.Error()))
		}
		os.Exit(1)
	}
}
