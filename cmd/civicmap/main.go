// Command civicmap renders US states and congressional districts in the
// terminal, as SVG, or over HTTP.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"civicmap/internal/config"
	"civicmap/internal/geom"
	"civicmap/internal/topo"
	"civicmap/internal/tui"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "civicmap [state]",
	Short: "Browse US states and congressional districts",
	Long: `civicmap draws the states layer in the terminal. Click a state, or pick
one from the sidebar, to zoom into its congressional districts.

Passing a two-letter state code opens that state directly.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./civicmap.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "civicmap:", err)
		os.Exit(1)
	}
}

// setup loads configuration, the root logger and both map layers. A
// missing district layer is logged and tolerated.
func setup(toFile bool) (config.Config, log.Logger, []geom.Feature, []geom.Feature, error) {
	cfg, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return cfg, nil, nil, nil, err
	}
	logger, err := cfg.Logger(toFile)
	if err != nil {
		return cfg, nil, nil, nil, err
	}
	states, err := topo.LoadFile(cfg.States.Path, cfg.States.Object, cfg.States.YDown)
	if err != nil {
		return cfg, nil, nil, nil, fmt.Errorf("states layer: %w", err)
	}
	logger.Info("states loaded", "path", cfg.States.Path, "count", len(states))
	districts, err := topo.LoadFile(cfg.Districts.Path, cfg.Districts.Object, cfg.Districts.YDown)
	if err != nil {
		logger.Warn("district layer unavailable", "path", cfg.Districts.Path, "err", err)
		districts = nil
	} else {
		logger.Info("districts loaded", "path", cfg.Districts.Path, "count", len(districts))
	}
	return cfg, logger, states, districts, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, logger, states, districts, err := setup(true)
	if err != nil {
		return err
	}
	var m tea.Model
	if len(args) > 0 {
		m = tui.NewWithState(states, districts, cfg.Settings(logger), args[0])
	} else {
		m = tui.New(states, districts, cfg.Settings(logger))
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
