// Package docs renders the embedded documentation topics in the terminal.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicsFS embed.FS

// NewCommand creates the docs command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "docs [topic]",
		Short:     "Show documentation topics",
		Long:      "Render an embedded documentation topic. Without arguments, list available topics.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: topicNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range topicNames() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			content, err := topicsFS.ReadFile("topics/" + args[0] + ".md")
			if err != nil {
				return fmt.Errorf("unknown topic %q", args[0])
			}

			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(string(content)))
			return nil
		},
	}
}

func topicNames() []string {
	entries, err := topicsFS.ReadDir("topics")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// renderMarkdown converts markdown to terminal output, falling back to the
// raw text when the renderer cannot be constructed.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
