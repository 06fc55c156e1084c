package main

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/toyz/archipelago/internal/builtin"
	"github.com/toyz/archipelago/internal/diagnostics"
	"github.com/toyz/archipelago/pkg/archipelago"
	"github.com/toyz/archipelago/pkg/archipelago/adapters"
	"github.com/toyz/archipelago/pkg/manifest"
)

// newServer builds the adapter for the configured framework
func newServer(framework string) (archipelago.Server, error) {
	switch framework {
	case "gin":
		gin.SetMode(gin.ReleaseMode)
		return adapters.NewDefaultGinAdapter(), nil
	case "echo":
		adapter := adapters.NewDefaultEchoAdapter()
		adapter.GetEngine().HidePort = true
		return adapter, nil
	case "fiber":
		return adapters.NewDefaultFiberAdapter(), nil
	case "chi":
		return adapters.NewDefaultChiAdapter(), nil
	default:
		return nil, fmt.Errorf("unsupported framework %q", framework)
	}
}

// newResolver returns a manifest resolver that knows the builtin handlers
func newResolver(logger *slog.Logger) (*manifest.Resolver, error) {
	handlers := manifest.NewHandlers()
	if err := builtin.RegisterAll(handlers, logger); err != nil {
		return nil, err
	}
	return manifest.NewResolver(handlers), nil
}

func newDiagnostics(cmd *cobra.Command) *diagnostics.DiagnosticSystem {
	return diagnostics.NewDiagnosticSystem(diagnostics.DiagnosticInfo).
		WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
}
