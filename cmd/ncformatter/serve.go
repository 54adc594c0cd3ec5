package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/joshuahamrick/ncformatter/internal/config"
	"github.com/joshuahamrick/ncformatter/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the document processing endpoint",
	Long: `Serve accepts base64 encoded Word documents as JSON on the configured
endpoint and answers with the normalized letter, the extracted paragraphs
and tables, and the detected document type.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("endpoint", "/api/process-word", "path of the processing endpoint")
	serveCmd.Flags().Int("max-upload-mb", 20, "largest accepted request body in MiB")
	serveCmd.Flags().Bool("extended", false, "apply the plsMatrix, money and title rewrites")
	serveCmd.Flags().Bool("diagnostics", true, "prepend the field cleanup banner")
	serveCmd.Flags().Bool("include-tables", false, "render Word tables after the paragraphs")
	bindFlags(serveCmd.Flags(), "addr", "endpoint", "max-upload-mb", "extended", "diagnostics", "include-tables")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	sugar := logger.Sugar()
	if _, err := maxprocs.Set(maxprocs.Logger(sugar.Infof)); err != nil {
		logger.Warn("failed to set GOMAXPROCS", zap.Error(err))
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := web.NewServer(cfg, logger)
	if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", zap.Error(err))
		return err
	}
	return nil
}
