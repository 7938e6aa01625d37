package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"iconcloud/cloud"
)

// labelsCmd lists the configured labels
var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "List the labels in display order with category and color",
	Args:  cobra.NoArgs,
	RunE:  runLabels,
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	indexStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(4).Align(lipgloss.Right)
)

func runLabels(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	nameWidth := len("Name")
	for _, l := range cfg.Labels {
		nameWidth = max(nameWidth, runewidth.StringWidth(l.Name))
	}
	nameStyle := lipgloss.NewStyle().Width(nameWidth + 2)

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%4s  %-*s  %-6s  %-9s  %s", "#", nameWidth, "Name", "Badge", "Category", "Color")))
	for i, l := range cfg.Labels {
		color := cloud.ResolveColor(l)
		category := l.Category
		if category == "" {
			category, _ = cloud.CategoryOf(l.Name)
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(color.Hex())).Render("■■")

		fmt.Fprintf(out, "%s  %s%-6s  %-9s  %s %s\n",
			indexStyle.Render(fmt.Sprint(i)),
			nameStyle.Render(l.Name),
			l.Badge(),
			category,
			swatch,
			color.Hex())
	}
	return nil
}
