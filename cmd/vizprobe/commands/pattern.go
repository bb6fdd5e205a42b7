package commands

import (
	"github.com/spf13/cobra"

	"github.com/vizprobe/vizprobe/overlay"
)

var (
	patternKind    string
	patternScale   float64
	patternOpacity float64
	patternOut     string
)

var patternCmd = &cobra.Command{
	Use:   "pattern <image>",
	Short: "Overlay a low-opacity geometric pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := loadImage(cmd, args[0])
		if err != nil {
			return err
		}
		out, err := overlay.Pattern(img, overlay.PatternKind(patternKind), overlay.PatternConfig{
			Scale:   patternScale,
			Opacity: patternOpacity,
		})
		if err != nil {
			return err
		}
		return saveImage(cmd, out, patternOut)
	},
}

func init() {
	patternCmd.Flags().StringVarP(&patternKind, "kind", "k", string(overlay.Checkerboard), "checkerboard, stripes or grid")
	patternCmd.Flags().Float64Var(&patternScale, "scale", 0.1, "pattern cell size relative to the short image side")
	patternCmd.Flags().Float64Var(&patternOpacity, "opacity", 0.2, "pattern opacity (0..1)")
	patternCmd.Flags().StringVarP(&patternOut, "out", "o", "", "output file name (generated when empty)")
	rootCmd.AddCommand(patternCmd)
}
