package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/wavedraw/svg"
	"github.com/gogpu/wavedraw/wavejson"
)

var renderCmd = &cobra.Command{
	Use:   "render [input]",
	Short: "Render a WaveJSON document to SVG",
	Long: `Reads a WaveJSON document from the given file, or from stdin when the
argument is omitted or "-", and writes the rendered SVG to --out or stdout.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRender(cmd, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
	renderCmd.Flags().String("font", "", "TTF font file for text measurement")
	renderCmd.Flags().String("skin", "", "Skin file overlaying the rendering options")
	renderCmd.Flags().Bool("json5", false, "Parse the input as JSON5")
	renderCmd.Flags().Bool("compress", false, "Gzip the output (implied by a .svgz --out)")
}

func runRender(cmd *cobra.Command, args []string) error {
	input := "-"
	if len(args) > 0 {
		input = args[0]
	}
	out, _ := cmd.Flags().GetString("out")
	fontPath, _ := cmd.Flags().GetString("font")
	skinPath, _ := cmd.Flags().GetString("skin")
	useJSON5, _ := cmd.Flags().GetBool("json5")
	compress, _ := cmd.Flags().GetBool("compress")

	var in io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input) // #nosec G304 -- Input file path is provided by the user.
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
		if strings.HasSuffix(input, ".json5") {
			useJSON5 = true
		}
	}

	parse := wavejson.Parse
	if useJSON5 {
		parse = wavejson.ParseJSON5
	}
	doc, err := parse(in)
	if err != nil {
		return err
	}
	figure, err := doc.ToFigure()
	if err != nil {
		return err
	}

	metrics, err := loadMetrics(fontPath)
	if err != nil {
		return err
	}
	opts, err := loadOptions(skinPath)
	if err != nil {
		return err
	}

	rendered, err := figure.Assemble(metrics, opts)
	if err != nil {
		return err
	}

	emit := svg.Write
	if compress || strings.HasSuffix(out, ".svgz") {
		emit = svg.WriteCompressed
	}

	if out == "" || out == "-" {
		return emit(os.Stdout, rendered)
	}
	f, err := os.Create(out) // #nosec G304 -- Output file path is provided by the user.
	if err != nil {
		return err
	}
	if err := emit(f, rendered); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
