package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cube-chase/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available display drivers",
	Long:  `Shows a list of all drivers the game can run on.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	drivers := registry.List()

	if len(drivers) == 0 {
		fmt.Println("No drivers available.")
		return
	}

	fmt.Println("Available drivers:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, d := range drivers {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, d := range drivers {
		fmt.Printf("  %-*s  %s\n", maxIDLen, d.ID, d.Title)
	}

	fmt.Println()
	fmt.Println("Run 'cube play --driver <id>' to play.")
}
