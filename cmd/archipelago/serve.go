package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/toyz/archipelago/pkg/archipelago"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Discover routes and serve them",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runServe,
	}
	cmd.Flags().String("addr", "", "listen address (default: :8080, env: ARCHIPELAGO_SERVER_ADDR)")
	cmd.Flags().String("framework", "", "framework: gin, echo, fiber, chi (default: echo)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	sess, err := sessionFrom(cmd)
	if err != nil {
		return err
	}
	cfg := sess.cfg

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts, err := sess.options()
	if err != nil {
		return err
	}

	server, err := newServer(cfg.Server.Framework)
	if err != nil {
		return err
	}

	if _, err := archipelago.Run(ctx, server, opts); err != nil {
		newDiagnostics(cmd).Error(err)
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		sess.logger.Info("starting server", "addr", cfg.Server.Addr, "framework", server.Name())
		errCh <- server.Start(cfg.Server.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	sess.logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	sess.logger.Info("server shutdown complete")
	return nil
}
