package main

import (
	"fmt"
	"os"

	"github.com/jakoblorz/go-monogen/internal/cli"
	"github.com/jakoblorz/go-monogen/internal/tui"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}
