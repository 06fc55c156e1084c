// Package archipelago discovers route modules in a directory tree and binds
// them to a host application
//
// # File Structure Convention
//
//	routes/
//	├── index.yaml            → /
//	├── admin/
//	│   ├── index.yaml        → /admin
//	│   ├── [...].yaml        → /admin/*
//	│   └── orders/
//	│       ├── index.route   → /admin/orders
//	│       └── [id]/
//	│           └── index.yaml → /admin/orders/:id
//
// [name] segments become named parameters, [] an anonymous parameter and
// [...] a trailing catch-all. index files describe their directory
//
// # Pipeline
//
// Run walks the root directory (Walk), resolves every module's Config
// through a Resolver (LoadAll) and binds each RouteConfig to the host
// Application in discovery order (Register):
//
//	app := adapters.NewDefaultEchoAdapter()
//	_, err := archipelago.Run(ctx, app, archipelago.Options{
//	    RootDir:  "./routes",
//	    Resolver: manifest.NewResolver(handlers),
//	})
//
// Files in a directory are visited in name order, before the contents of
// its subdirectories, so hook invocation and registration order are stable
package archipelago
