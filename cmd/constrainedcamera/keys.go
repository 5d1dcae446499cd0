package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/smasonuk/constrainedcamera"
)

var (
	keyColor    = lipgloss.Color("#8BC34A")
	headerColor = lipgloss.Color("#2196F3")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(headerColor)
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(keyColor).Width(10)
	helpStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(headerColor).
			Padding(0, 1)
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the keyboard bindings and the viewer help",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), renderKeys(constrainedcamera.HelpString(), constrainedcamera.KeyBindings()))
		return err
	},
}

func renderKeys(help string, bindings []constrainedcamera.KeyDescription) string {
	var b strings.Builder
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render("Keys"))
	b.WriteString("\n")
	for _, k := range bindings {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(k.Name), k.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Mouse"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render("Left"), "Rotate around the scene center"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render("Right"), "Translate the camera"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render("Wheel"), "Move forward or backward"))
	return b.String()
}
