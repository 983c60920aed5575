package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hirepath/match-engine/internal/config"
	"github.com/hirepath/match-engine/internal/server"
)

var (
	serveConfigPath string
	servePort       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the match analysis and health endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	eng, log, err := buildEngine(context.Background(), cfg)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{Port: cfg.Port}, eng, log)
	return srv.Start()
}
