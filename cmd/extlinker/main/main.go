package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arthur-debert/extlinker/cmd/extlinker"
	"github.com/arthur-debert/extlinker/pkg/ui/styles"
)

func main() {
	rootCmd := extlinker.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var exitErr *extlinker.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
