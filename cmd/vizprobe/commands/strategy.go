package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vizprobe/vizprobe"
)

var (
	strategyGoal string
	strategyOut  string
)

var strategyCmd = &cobra.Command{
	Use:   "strategy <name> <image>",
	Short: "Run a named probe recipe over an image",
	Long: "Run a named probe recipe over an image and print the prompt to pair\n" +
		"with the perturbed result.\n\nAvailable: " + strings.Join(vizprobe.Strategies(), ", "),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := loadImage(cmd, args[1])
		if err != nil {
			return err
		}
		res, err := toolkit.Strategy(cmd.Context(), args[0], strategyGoal, img)
		if err != nil {
			return err
		}
		if err := saveImage(cmd, res.Image, strategyOut); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Prompt)
		return nil
	},
}

func init() {
	strategyCmd.Flags().StringVarP(&strategyGoal, "goal", "g", "", "capability under test, phrased as the probe request")
	strategyCmd.Flags().StringVarP(&strategyOut, "out", "o", "", "output file name (generated when empty)")
	_ = strategyCmd.MarkFlagRequired("goal")
	rootCmd.AddCommand(strategyCmd)
}
