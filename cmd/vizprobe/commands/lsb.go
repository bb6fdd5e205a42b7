package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vizprobe/vizprobe/lsb"
)

var (
	lsbMessage string
	lsbOut     string
)

var lsbCmd = &cobra.Command{
	Use:   "lsb",
	Short: "Pixel-level least significant bit steganography",
}

var lsbHideCmd = &cobra.Command{
	Use:   "hide <image>",
	Short: "Hide a message in the image's least significant bits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := loadImage(cmd, args[0])
		if err != nil {
			return err
		}
		stego, err := lsb.Hide(img, lsbMessage)
		if err != nil {
			return err
		}
		return saveImage(cmd, stego, lsbOut)
	},
}

var lsbRevealCmd = &cobra.Command{
	Use:   "reveal <image>",
	Short: "Recover a message hidden with hide",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := loadImage(cmd, args[0])
		if err != nil {
			return err
		}
		msg, err := lsb.Reveal(img)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

func init() {
	lsbHideCmd.Flags().StringVarP(&lsbMessage, "message", "m", "", "message to hide")
	lsbHideCmd.Flags().StringVarP(&lsbOut, "out", "o", "", "output file name (generated when empty)")
	_ = lsbHideCmd.MarkFlagRequired("message")
	lsbCmd.AddCommand(lsbHideCmd, lsbRevealCmd)
	rootCmd.AddCommand(lsbCmd)
}
