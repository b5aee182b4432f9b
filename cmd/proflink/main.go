package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/proflink/cmd/proflink/commands"
	"github.com/arthur-debert/proflink/pkg/style"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Render("Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
