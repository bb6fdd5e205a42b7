package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vizprobe/vizprobe/textmod"
)

var (
	obfuscateModes []string
	obfuscateLevel float64
	obfuscateSeed  int64
)

var obfuscateCmd = &cobra.Command{
	Use:   "obfuscate <text>",
	Short: "Apply text perturbations (substitute, spacing, frame)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		for _, mode := range obfuscateModes {
			switch mode {
			case "substitute":
				text = textmod.Substitute(text, obfuscateLevel, obfuscateSeed)
			case "spacing":
				text = textmod.Spacing(text, obfuscateLevel, obfuscateSeed)
			case "frame":
				text = textmod.Frame(text, obfuscateSeed)
			default:
				return fmt.Errorf("unknown mode %q (available: substitute, spacing, frame)", mode)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	obfuscateCmd.Flags().StringSliceVar(&obfuscateModes, "mode", []string{"substitute"}, "perturbations to apply in order")
	obfuscateCmd.Flags().Float64Var(&obfuscateLevel, "level", 0.3, "perturbation intensity (0..1)")
	obfuscateCmd.Flags().Int64Var(&obfuscateSeed, "seed", 1, "random seed for reproducible output")
	rootCmd.AddCommand(obfuscateCmd)
}
