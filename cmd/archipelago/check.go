package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/toyz/archipelago/internal/diagnostics"
	"github.com/toyz/archipelago/pkg/archipelago"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Verify that every module exports a valid config and binds cleanly",
		Long: `Check discovers the routes directory in strict mode and binds the result to
the configured framework without starting it, so missing configs, unknown
handlers and router conflicts all fail with a non-zero exit status.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}
	cmd.Flags().String("framework", "", "framework to bind against: gin, echo, fiber, chi (default: echo)")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	sess, err := sessionFrom(cmd)
	if err != nil {
		return err
	}
	cfg := sess.cfg

	d := newDiagnostics(cmd)
	opts, err := sess.options()
	if err != nil {
		return err
	}
	opts.Strict = true

	var descriptors []*archipelago.RouteDescriptor
	opts.OnRouteLoading = func(_ context.Context, descriptor archipelago.RouteDescriptor) error {
		descriptors = append(descriptors, &descriptor)
		return nil
	}

	server, err := newServer(cfg.Server.Framework)
	if err != nil {
		return err
	}

	if _, err := archipelago.Run(cmd.Context(), server, opts); err != nil {
		d.Error(err)
		return err
	}

	summary := diagnostics.Summarize(descriptors)
	d.Success("%s: %d modules bind cleanly on %s", cfg.Routes.Dir, summary.Modules, server.Name())
	return nil
}
