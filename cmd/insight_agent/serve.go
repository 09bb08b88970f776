package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadhikari20/AIJobInsight/internal/server"
)

var (
	servePort    int
	serveDataset string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST insight service",
	Long:  `Start an HTTP server that exposes the insight endpoints backed by the job postings dataset.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8000, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDataset, "dataset", "data/job_postings.csv", "Path to the job postings CSV file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := server.Config{
		Port:        servePort,
		DatasetPath: serveDataset,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
