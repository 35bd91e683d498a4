package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycast/internal/platform/tui"
	"github.com/vovakirdan/tui-raycast/internal/registry"
)

var (
	inspectPose    poseFlags
	flagPlain      bool
	flagViewHeight float64
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [map]",
	Short: "Browse one sweep as a table",
	Long: `Cast one sweep from the spawn point (or --x/--y/--angle) and show every
ray: angle, corrected distance, hit axis, DDA steps and strip height.
In the table view W/S move, A/D turn and the arrows walk the rows.

Examples:
  raycast inspect
  raycast inspect classic --angle 0
  raycast inspect --plain --view-height 320`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectPose.register(inspectCmd)
	inspectCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the table to stdout instead of opening the viewer")
	inspectCmd.Flags().Float64Var(&flagViewHeight, "view-height", 320, "Viewport height used for strip heights with --plain")
}

func runInspect(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, s, err := loadScene(logger, args)
	if err != nil {
		return err
	}
	inspectPose.apply(cmd, s)

	if !flagPlain {
		ctx, cancel := signalContext()
		defer cancel()
		fe, err := registry.Create("inspect")
		if err != nil {
			return err
		}
		return fe.Run(ctx, s, registry.Options{Config: cfg})
	}

	s.Renderer.Minimap = false
	frame := s.Frame(float64(s.Renderer.Caster.Rays()), flagViewHeight)

	fmt.Println(s.Status())
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tAngle\tDistance\tAxis\tSteps\tHeight\t")
	for _, row := range tui.SweepRows(frame) {
		for _, cell := range row {
			fmt.Fprint(tw, cell, "\t")
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
