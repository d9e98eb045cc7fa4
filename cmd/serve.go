package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"segalign/internal/config"
	"segalign/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the segmentation pipeline over HTTP",
	Long: `Serve exposes POST /v1/segment: the request body carries a transcription
object plus optional per-request parameter overrides, and the response is
either segment records (JSON) or SRT text.`,
	RunE: runServe,
}

var (
	serveHost       string
	servePort       int
	serveConfigPath string
)

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "listen address")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "listen port")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "TOML settings file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	settings := config.Default()
	if serveConfigPath != "" {
		loaded, err := config.Load(serveConfigPath)
		if err != nil {
			return err
		}
		settings = loaded
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := server.New(settings)
	addr := fmt.Sprintf("%s:%d", serveHost, servePort)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", addr)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		slog.Info("shutting down")
		return app.ShutdownWithTimeout(5 * time.Second)
	}
}
