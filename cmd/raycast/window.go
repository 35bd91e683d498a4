package main

import (
	"github.com/spf13/cobra"
)

var windowCmd = &cobra.Command{
	Use:   "window [map]",
	Short: "Walk a map in a desktop window",
	Long: `Open the raycaster in a desktop window sized by display.width and
display.height. Same controls as 'play'; H toggles the HUD.

Examples:
  raycast window
  raycast window courtyard --fps 60`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runFrontend("window", args, false)
	},
}

func init() {
	windowCmd.Flags().StringVar(&flagMap, "map", "", "Map ID or file (same as the positional argument)")
}
