package commands

import (
	"image/color"

	"github.com/spf13/cobra"

	"github.com/vizprobe/vizprobe/overlay"
)

var (
	overlayText     string
	overlayPosition string
	overlayOpacity  float64
	overlayFontSize float64
	overlayFontPath string
	overlayOut      string
)

var overlayCmd = &cobra.Command{
	Use:   "overlay <image>",
	Short: "Draw semi-transparent text over an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := loadImage(cmd, args[0])
		if err != nil {
			return err
		}
		out, err := overlay.Text(img, overlayText, overlay.TextConfig{
			Position: overlayPosition,
			Opacity:  overlayOpacity,
			FontSize: overlayFontSize,
			FontPath: overlayFontPath,
			Color:    color.NRGBA{R: 255, G: 255, B: 255},
		})
		if err != nil {
			return err
		}
		return saveImage(cmd, out, overlayOut)
	},
}

func init() {
	overlayCmd.Flags().StringVarP(&overlayText, "text", "t", "", "text to draw")
	overlayCmd.Flags().StringVarP(&overlayPosition, "position", "p", overlay.PositionBottom, "top, bottom or center")
	overlayCmd.Flags().Float64Var(&overlayOpacity, "opacity", 0.4, "text opacity (0..1)")
	overlayCmd.Flags().Float64Var(&overlayFontSize, "font-size", 20, "font size in points")
	overlayCmd.Flags().StringVar(&overlayFontPath, "font", "", "path to a TTF font (built-in when empty)")
	overlayCmd.Flags().StringVarP(&overlayOut, "out", "o", "", "output file name (generated when empty)")
	_ = overlayCmd.MarkFlagRequired("text")
	rootCmd.AddCommand(overlayCmd)
}
