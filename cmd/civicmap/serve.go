package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"civicmap/internal/geom"
	"civicmap/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve rendered maps over HTTP",
	Long: `serve exposes the maps as SVG:

  GET /health            liveness probe
  GET /states            state reference table
  GET /map.svg           the country
  GET /states/{code}.svg one state, with its districts when available`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Int("port", 3000, "service port to listen")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := viper.BindPFlag("serve.port", cmd.Flags().Lookup("port")); err != nil {
		return fmt.Errorf("binding --port: %w", err)
	}
	cfg, logger, states, districts, err := setup(false)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	vp := geom.Viewport{Width: cfg.Serve.Width, Height: cfg.Serve.Height}
	srv := server.New(states, districts, cfg.Settings(logger), vp, logger)
	return srv.ListenAndServe(ctx, cfg.Serve.Port)
}
