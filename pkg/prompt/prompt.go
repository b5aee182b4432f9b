// Package prompt provides interactive yes/no confirmations for destructive
// operations.
package prompt

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	// Confirm returns true when the user accepts. The default on a bare
	// return is decline.
	Confirm(question string) bool
}

// ConsoleConfirmer reads answers from stdin. When stdin is not a terminal
// every question is declined, so scripted runs never block on a prompt.
type ConsoleConfirmer struct{}

// NewConsoleConfirmer creates a console-backed Confirmer.
func NewConsoleConfirmer() *ConsoleConfirmer {
	return &ConsoleConfirmer{}
}

// Confirm prompts on stdout and reads one line from stdin.
func (c *ConsoleConfirmer) Confirm(question string) bool {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return false
	}

	fmt.Printf("%s [y/N]: ", question)
	var response string
	_, err := fmt.Scanln(&response)
	if err != nil && err.Error() != "unexpected newline" {
		return false
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// StaticConfirmer always answers the same way. Used for --force runs and in
// tests.
type StaticConfirmer struct {
	Answer bool
}

// Confirm returns the fixed answer.
func (c *StaticConfirmer) Confirm(string) bool {
	return c.Answer
}
