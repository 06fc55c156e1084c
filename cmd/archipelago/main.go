package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/toyz/archipelago/internal/config"
	"github.com/toyz/archipelago/internal/logging"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: version,
		Use:     "archipelago",
		Short:   "Convention-based route discovery for Go web frameworks",
		Long: `Archipelago walks a directory of route modules, compiles each file path
into a URL pattern and binds the handlers the module declares.

  routes/admin/index.yaml          -> /admin
  routes/admin/orders/[id].route   -> /admin/orders/:id
  routes/admin/[...].yaml          -> /admin/*`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Routes.Dir = args[0]
			}

			logger := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
			logging.Setup(logger)

			(&session{cfg: cfg, logger: logger}).attach(cmd)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file path (default: ./archipelago.yaml)")
	flags.String("dir", "", "routes directory (default: ./routes, env: ARCHIPELAGO_ROUTES_DIR)")
	flags.Bool("strict", false, "fail when a module exports no config (env: ARCHIPELAGO_ROUTES_STRICT)")
	flags.Int("concurrency", 0, "maximum concurrent module loads and directory reads, 0 for the defaults")
	flags.String("log-level", "", "log level: debug, info, warn, error (default: info)")
	flags.String("log-format", "", "log format: text, json (default: text)")

	rootCmd.AddCommand(newRoutesCmd(), newCheckCmd(), newServeCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
