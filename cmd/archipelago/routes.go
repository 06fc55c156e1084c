package main

import (
	"github.com/spf13/cobra"

	"github.com/toyz/archipelago/internal/diagnostics"
	"github.com/toyz/archipelago/pkg/archipelago"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes [dir]",
		Short: "Print the routes discovered in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRoutes,
	}
}

func runRoutes(cmd *cobra.Command, args []string) error {
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

	registry, err := archipelago.Discover(cmd.Context(), opts)
	if err != nil {
		d.Error(err)
		return err
	}

	d.Header(cfg.Routes.Dir)
	d.RouteTable(registry.Descriptors())
	d.Summary(diagnostics.Summarize(registry.Descriptors()))
	return nil
}
