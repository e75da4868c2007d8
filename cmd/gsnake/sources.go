package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gesture-snake/internal/registry"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List landmark sources",
	Long:  `Shows every landmark source that can drive the game.`,
	Args:  cobra.NoArgs,
	Run:   runSources,
}

func runSources(cmd *cobra.Command, args []string) {
	sources := registry.List()

	if len(sources) == 0 {
		fmt.Println("No sources available.")
		return
	}

	fmt.Println("Available sources:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, s := range sources {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, s := range sources {
		fmt.Printf("  %-*s  %s\n", maxNameLen, s.Name, s.Description)
	}

	fmt.Println()
	fmt.Println("Run 'gsnake play --source <name>' to use one.")
}
