package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vizprobe/vizprobe/metrics"
)

var compareHeatmap string

var compareCmd = &cobra.Command{
	Use:   "compare <original> <perturbed>",
	Short: "Report MSE and PSNR between two images",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		original, err := loadImage(cmd, args[0])
		if err != nil {
			return err
		}
		perturbed, err := loadImage(cmd, args[1])
		if err != nil {
			return err
		}

		mse, err := metrics.MSE(original, perturbed)
		if err != nil {
			return err
		}
		psnr, err := metrics.PSNR(original, perturbed)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "MSE:  %.4f\nPSNR: %.2f dB\n", mse, psnr)

		if compareHeatmap != "" {
			heat, err := metrics.Heatmap(original, perturbed)
			if err != nil {
				return err
			}
			return saveImage(cmd, heat, compareHeatmap)
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareHeatmap, "heatmap", "", "also write an amplified difference heatmap under this name")
	rootCmd.AddCommand(compareCmd)
}
