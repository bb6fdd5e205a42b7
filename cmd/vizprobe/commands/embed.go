package commands

import (
	"github.com/spf13/cobra"

	"github.com/vizprobe/vizprobe/freqdom"
	"github.com/vizprobe/vizprobe/message"
)

var (
	embedMessage  string
	embedStrength float64
	embedGolay    bool
	embedSeed     int64
	embedOut      string
)

var embedCmd = &cobra.Command{
	Use:   "embed <image>",
	Short: "Embed a message into an image's frequency domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := loadImage(cmd, args[0])
		if err != nil {
			return err
		}

		opts := []message.Option{message.WithoutECC()}
		if embedGolay {
			opts = []message.Option{message.WithGolay(embedSeed)}
		}
		payload := message.NewString(embedMessage, opts...)

		logger.Debug().
			Int("bits", payload.Len()).
			Int("capacity", freqdom.Capacity(img.Bounds())).
			Msg("embedding")

		marked, result, err := freqdom.Embed(cmd.Context(), img, payload,
			freqdom.WithStrength(embedStrength))
		if err != nil {
			return err
		}
		if result.DroppedBits > 0 {
			logger.Warn().
				Int("dropped", result.DroppedBits).
				Int("capacity", result.Capacity).
				Msg("message truncated to image capacity")
		}
		return saveImage(cmd, marked, embedOut)
	},
}

func init() {
	embedCmd.Flags().StringVarP(&embedMessage, "message", "m", "", "message to embed")
	embedCmd.Flags().Float64VarP(&embedStrength, "strength", "s", freqdom.DefaultStrength, "coefficient adjustment strength")
	embedCmd.Flags().BoolVar(&embedGolay, "golay", false, "apply Golay error correction")
	embedCmd.Flags().Int64Var(&embedSeed, "seed", message.DefaultShuffleSeed, "bit shuffle seed for Golay coding")
	embedCmd.Flags().StringVarP(&embedOut, "out", "o", "", "output file name (generated when empty)")
	_ = embedCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(embedCmd)
}
