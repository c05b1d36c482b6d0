package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"civicmap/internal/geom"
	"civicmap/internal/mapview"
	"civicmap/internal/refdata"
	"civicmap/internal/svgout"
)

var svgCmd = &cobra.Command{
	Use:   "svg [state]",
	Short: "Write the country, or one state, as an SVG document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSVG,
}

func init() {
	rootCmd.AddCommand(svgCmd)
	svgCmd.Flags().StringP("output", "o", "-", "output file, - for stdout")
	svgCmd.Flags().Int("width", 975, "document width")
	svgCmd.Flags().Int("height", 610, "document height")
}

func runSVG(cmd *cobra.Command, args []string) error {
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return err
	}
	height, err := cmd.Flags().GetInt("height")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}
	cfg, logger, states, districts, err := setup(false)
	if err != nil {
		return err
	}

	settings := cfg.Settings(logger)
	opts := svgout.DefaultOptions()
	var v *mapview.View
	if len(args) == 0 {
		v = mapview.Country(states, settings, nil)
		opts.Title = "United States"
	} else {
		v, err = mapview.StateDetail(states, districts, args[0], settings, nil)
		if err != nil {
			return err
		}
		if st, ok := refdata.ByCode(args[0]); ok {
			opts.Title = st.DisplayName
		}
	}

	var w io.Writer = os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	vp := geom.Viewport{Width: float64(width), Height: float64(height)}
	if err := svgout.Write(bw, v, vp, opts); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	logger.Info("svg written", "view", opts.Title, "output", output)
	return nil
}
