package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vizprobe/vizprobe/freqdom"
	"github.com/vizprobe/vizprobe/message"
)

var (
	extractSize  int
	extractGolay bool
	extractSeed  int64
)

var extractCmd = &cobra.Command{
	Use:   "extract <original> <marked>",
	Short: "Recover an embedded message by comparing against the original image",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		original, err := loadImage(cmd, args[0])
		if err != nil {
			return err
		}
		marked, err := loadImage(cmd, args[1])
		if err != nil {
			return err
		}

		opts := []message.Option{message.WithoutECC()}
		if extractGolay {
			opts = []message.Option{message.WithGolay(extractSeed)}
		}
		dec := message.NewDecoder(extractSize*8, opts...)

		decoded, err := freqdom.Extract(cmd.Context(), original, marked, dec)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), decoded.String())
		return nil
	},
}

func init() {
	extractCmd.Flags().IntVarP(&extractSize, "size", "n", 0, "message length in bytes")
	extractCmd.Flags().BoolVar(&extractGolay, "golay", false, "message was embedded with Golay error correction")
	extractCmd.Flags().Int64Var(&extractSeed, "seed", message.DefaultShuffleSeed, "bit shuffle seed for Golay coding")
	_ = extractCmd.MarkFlagRequired("size")
	rootCmd.AddCommand(extractCmd)
}
