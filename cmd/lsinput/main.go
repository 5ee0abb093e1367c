package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/eddy-geek/lsinput/internal/cli"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
