// Package commands implements the vizprobe command line interface.
package commands

import (
	"fmt"
	"image"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vizprobe/vizprobe"
)

var (
	outDir    string
	verbose   bool
	fitWidth  int
	fitHeight int

	logger  zerolog.Logger
	toolkit *vizprobe.Toolkit
)

var rootCmd = &cobra.Command{
	Use:   "vizprobe",
	Short: "Visual and textual perturbation toolkit for multimodal robustness research",
	Long: `vizprobe applies controlled perturbations to images and prompt text for
probing how multimodal models respond to adversarial inputs. All output is
intended for authorized robustness evaluation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()

		var err error
		toolkit, err = vizprobe.New(
			vizprobe.WithOutputDir(outDir),
			vizprobe.WithLogger(logger),
		)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outDir, "out-dir", "output", "directory for generated images")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVar(&fitWidth, "width", 0, "crop and scale loaded images to this width (requires --height)")
	rootCmd.PersistentFlags().IntVar(&fitHeight, "height", 0, "crop and scale loaded images to this height (requires --width)")
}

func Execute() error {
	return rootCmd.Execute()
}

func loadImage(cmd *cobra.Command, source string) (image.Image, error) {
	img, err := toolkit.Load(cmd.Context(), source)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	if fitWidth > 0 && fitHeight > 0 {
		img = toolkit.Fit(img, fitWidth, fitHeight)
	}
	return img, nil
}

func saveImage(cmd *cobra.Command, img image.Image, name string) error {
	path, err := toolkit.Save(img, name)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
