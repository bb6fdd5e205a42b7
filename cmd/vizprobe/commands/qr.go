package commands

import (
	"github.com/spf13/cobra"

	"github.com/vizprobe/vizprobe/overlay"
)

var (
	qrContent string
	qrRelX    float64
	qrRelY    float64
	qrSize    float64
	qrOpacity float64
	qrOut     string
)

var qrCmd = &cobra.Command{
	Use:   "qr <image>",
	Short: "Stamp a QR code onto an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := loadImage(cmd, args[0])
		if err != nil {
			return err
		}
		out, err := overlay.QR(img, qrContent, overlay.QRConfig{
			RelX:       qrRelX,
			RelY:       qrRelY,
			SizeFactor: qrSize,
			Opacity:    qrOpacity,
		})
		if err != nil {
			return err
		}
		return saveImage(cmd, out, qrOut)
	},
}

func init() {
	qrCmd.Flags().StringVarP(&qrContent, "content", "c", "", "content encoded in the QR code")
	qrCmd.Flags().Float64Var(&qrRelX, "x", 0.7, "horizontal placement relative to width (0..1)")
	qrCmd.Flags().Float64Var(&qrRelY, "y", 0.7, "vertical placement relative to height (0..1)")
	qrCmd.Flags().Float64Var(&qrSize, "size", 0.2, "QR side length relative to the short image side")
	qrCmd.Flags().Float64Var(&qrOpacity, "opacity", 0.8, "QR opacity (0..1)")
	qrCmd.Flags().StringVarP(&qrOut, "out", "o", "", "output file name (generated when empty)")
	_ = qrCmd.MarkFlagRequired("content")
	rootCmd.AddCommand(qrCmd)
}
