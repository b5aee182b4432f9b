package internal

import (
	"github.com/pterm/pterm"

	"github.com/arthur-debert/proflink/pkg/capability"
	"github.com/arthur-debert/proflink/pkg/policy"
)

// PrintBanner shows the operator what a run will act on: selected scope,
// shell targets and detected tools. It carries no control impact.
func PrintBanner(title string, res policy.Resolution, caps *capability.Set, dryRun bool) {
	if dryRun {
		title += " (dry run)"
	}
	pterm.DefaultSection.Println(title)

	shells := make([]string, 0, len(res.Shells))
	for _, s := range res.Shells {
		shells = append(shells, s.String())
	}
	pterm.Info.Printfln("scope: %s", res.Scope)
	pterm.Info.Printfln("targets: %v", shells)
	for _, tool := range caps.Tools() {
		if tool.Present {
			pterm.Info.Printfln("found %s", tool.Name)
		} else {
			pterm.Info.Printfln("missing %s", tool.Name)
		}
	}
}
