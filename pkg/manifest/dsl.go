package manifest

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// routeFile is a .route module:
//
//	# orders by id
//	GET auth load-order render
//	DELETE auth delete-order
//	ignore
type routeFile struct {
	Entries []*routeEntry `parser:"( @@ | EOL )*"`
}

type routeEntry struct {
	Ignore bool       `parser:"( @'ignore'"`
	Route  *routeLine `parser:"| @@ ) EOL"`
}

type routeLine struct {
	Pos lexer.Position

	Method   string   `parser:"@Ident"`
	Handlers []string `parser:"@Ident+"`
}

var routeParser = participle.MustBuild[routeFile](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_.\-]*`},
		{Name: "EOL", Pattern: `\n`},
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
	})),
	participle.Elide("Whitespace", "Comment"),
)

// parseRouteFile reads the .route DSL. A file without entries exports no config
func parseRouteFile(filename string, data []byte) (*ModuleSpec, error) {
	// every entry is newline terminated, including the last one
	file, err := routeParser.ParseBytes(filename, append(data[:len(data):len(data)], '\n'))
	if err != nil {
		return nil, fmt.Errorf("invalid route file: %w", err)
	}
	if len(file.Entries) == 0 {
		return nil, nil
	}

	spec := &ModuleSpec{}
	for _, entry := range file.Entries {
		if entry.Ignore {
			spec.Ignore = true
			continue
		}
		spec.Routes = append(spec.Routes, RouteSpec{
			Method:   entry.Route.Method,
			Handlers: entry.Route.Handlers,
		})
	}
	return spec, nil
}
