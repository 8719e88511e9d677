package main

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	shadow "github.com/dinktools/chess-shadow-go"
)

// chess input.bmp
// chess input.bmp output.png
// chess input.bmp -t black
// chess input.bmp -t none -v
// chess input.bmp -c chess.toml

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		colorName  string
		configPath string
		tolerance  int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "chess <input> [output]",
		Short: "Convert half-tone effects to smooth shadows",
		Long: `chess converts bitmap images that encode shadows as a checkerboard
pattern into PNGs with smooth alpha-blended shadows. If no output path is
given, the input path with a .png extension is used.`,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})

			cfg := shadow.DefaultConfig()
			if configPath != "" {
				loaded, err := shadow.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
				logger.Debug("loaded config", "path", configPath)
			}

			// Flags set explicitly on the command line win over the
			// config file.
			if configPath == "" || cmd.Flags().Changed("transparency-color") {
				color, err := shadow.ParseColor(colorName)
				if err != nil {
					return err
				}
				cfg.TransparencyColor = color
			}
			if cmd.Flags().Changed("tolerance") {
				if tolerance < 0 || tolerance > 255 {
					return fmt.Errorf("tolerance %d out of range [0,255]", tolerance)
				}
				cfg.Tolerance = tolerance
			}

			input := args[0]
			output := ""
			if len(args) == 2 {
				output = args[1]
			}
			if output == "" {
				output = shadow.OutputPathFor(input)
			}

			logger.Debug("converting",
				"input", input,
				"transparency-color", colorName,
				"tolerance", cfg.Tolerance)

			_, info, err := shadow.ConvertFile(input, output, cfg)
			if err != nil {
				return err
			}

			logger.Info("converted",
				"input", input,
				"output", output,
				"size", fmt.Sprintf("%dx%d", info.Width, info.Height),
				"keyed", info.KeyedPixels,
				"shadow", info.ShadowPixels,
				"blended", info.BlendedPixels)
			return nil
		},
	}

	cmd.Flags().StringVarP(&colorName, "transparency-color", "t", "white",
		"color keyed to transparent before processing (white, black, none or hex)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "",
		"TOML file with conversion parameters")
	cmd.Flags().IntVar(&tolerance, "tolerance", 0,
		"per-channel color match tolerance (0-255)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose logging")

	return cmd
}
