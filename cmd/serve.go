package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fastapply/fastapply/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the extraction and search API over HTTP",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", ":8080", "address to listen on")
}

func serve(cmd *cobra.Command) {
	logger, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	agg, err := newAggregator(config, logger)
	if err != nil {
		logger.Fatal("building the aggregator", zap.Error(err))
	}

	addr, _ := cmd.Flags().GetString("listen")

	logger.Info("starting the fastapply server", zap.String("version", version))

	srv := server.New(addr, agg, newProfileExtractor(config), logger)
	if err := srv.Run(context.Background()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
