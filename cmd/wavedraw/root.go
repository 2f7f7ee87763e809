package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/wavedraw"
	"github.com/gogpu/wavedraw/skin"
	"github.com/gogpu/wavedraw/text"
)

var rootCmd = &cobra.Command{
	Use:   "wavedraw",
	Short: "Wavedraw renders digital timing diagrams from WaveJSON",
	Long: `Wavedraw turns WaveJSON signal descriptions into SVG timing diagrams,
either as a one-shot file conversion or as a small rendering service.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			wavedraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	}
}

// loadMetrics opens the font at fontPath, or falls back to the built-in
// monospace approximation when no font is given.
func loadMetrics(fontPath string) (wavedraw.TextMetrics, error) {
	if fontPath == "" {
		return wavedraw.Monospace(), nil
	}
	return text.NewSourceFromFile(fontPath)
}

// loadOptions starts from the defaults and overlays the skin at skinPath,
// if any.
func loadOptions(skinPath string) (*wavedraw.Options, error) {
	opts := wavedraw.DefaultOptions()
	if skinPath == "" {
		return opts, nil
	}

	f, err := os.Open(skinPath) // #nosec G304 -- Skin file path is provided by the user.
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := skin.Load(f)
	if err != nil {
		return nil, err
	}
	s.Apply(opts)
	return opts, nil
}
