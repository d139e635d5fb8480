// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/assignment-engine/internal/linktext"
	"github.com/pdiddy/assignment-engine/internal/server"
	"github.com/pdiddy/assignment-engine/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analyzer, drafter, and enhancer over HTTP",
	Long: `Serve starts the HTTP API:

  POST /api/ai/analyze-assignment   {assignmentDetails, externalContent?}
  POST /api/ai/generate-draft       {assignmentDetails, analysisResult, externalContent?}
  POST /api/ai/enhance-content      {content, instruction}
  POST /api/links/extract           {url}
  GET  /api/drafts                  ?courseId=&submitted=&limit=
  POST /api/drafts                  {courseId, assignmentId, assignmentType?, content}
  GET  /api/drafts/:id
  DELETE /api/drafts/:id
  POST /api/drafts/:id/submit
  GET  /healthz
  GET  /metrics

The server stops gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg := serverConfig()
	log := server.NewLogger(cfg.Log.Level, os.Stderr)

	st, err := store.New(cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	srv := server.New(cfg, log, st, linktext.New(cfg.Fetch))
	if err := srv.Run(ctx); err != nil {
		log.WithError(err).Error("server stopped")
		return err
	}
	log.Info("server exited")
	return nil
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("log-level", "info", "log level: debug, info, warn, error")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("log.level", serveCmd.Flags().Lookup("log-level"))

	rootCmd.AddCommand(serveCmd)
}
