package archipelago

import (
	"path"
	"regexp"
	"strconv"
	"strings"
)

// IndexPrefix marks a file that describes its directory's own route
const IndexPrefix = "index"

// AnonymousParamPrefix prefixes the generated names of [] segments
const AnonymousParamPrefix = "_"

// segmentRegex matches [...], [name] and [] segments
var segmentRegex = regexp.MustCompile(`\[(\.\.\.|\w*)\]`)

// Compile converts a module path relative to the scan root into a route pattern
//
//	/admin/index.ts             -> /admin
//	/admin/orders/[id]/index.ts -> /admin/orders/:id
//	/admin/[...].ts             -> /admin/*
//	/files/[]/[].ts             -> /files/:_0/:_1
func Compile(relPath string) string {
	segments := strings.Split(strings.ReplaceAll(relPath, "\\", "/"), "/")

	last := len(segments) - 1
	isIndex := strings.HasPrefix(segments[last], IndexPrefix)
	if isIndex {
		segments = segments[:last]
	}

	anonymous := 0
	route := segmentRegex.ReplaceAllStringFunc(strings.Join(segments, "/"), func(match string) string {
		name := match[1 : len(match)-1]
		switch name {
		case "...":
			return "*"
		case "":
			name = AnonymousParamPrefix + strconv.Itoa(anonymous)
			anonymous++
		}
		return ":" + name
	})

	if !isIndex {
		route = strings.TrimSuffix(route, path.Ext(route))
	}

	route = strings.Trim(route, "/")
	return "/" + route
}
