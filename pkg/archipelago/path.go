package archipelago

import (
	"strings"
)

// PathPartType represents the type of a pattern part
type PathPartType int

const (
	StaticPart PathPartType = iota
	ParameterPart
	WildcardPart
)

// PathPart represents a single part of a compiled route pattern
type PathPart struct {
	Type  PathPartType
	Value string // For static parts: the literal text, for parameters: the parameter name
}

// Pattern is a compiled route pattern such as "/admin/orders/:id" or "/admin/*"
type Pattern string

// Raw returns the pattern text
func (p Pattern) Raw() string {
	return string(p)
}

// Parts splits the pattern into static text, named parameters and the
// trailing wildcard
func (p Pattern) Parts() []PathPart {
	path := string(p)
	var parts []PathPart

	i := 0
	for i < len(path) {
		switch path[i] {
		case ':':
			j := i + 1
			for j < len(path) && path[j] != '/' {
				j++
			}
			parts = append(parts, PathPart{Type: ParameterPart, Value: path[i+1 : j]})
			i = j
		case '*':
			parts = append(parts, PathPart{Type: WildcardPart, Value: "*"})
			i++
		default:
			start := i
			for i < len(path) && path[i] != ':' && path[i] != '*' {
				i++
			}
			parts = append(parts, PathPart{Type: StaticPart, Value: path[start:i]})
		}
	}

	return parts
}

// ParamNames returns the names of the named parameters in order
func (p Pattern) ParamNames() []string {
	var names []string
	for _, part := range p.Parts() {
		if part.Type == ParameterPart {
			names = append(names, part.Value)
		}
	}
	return names
}

// HasWildcard reports whether the pattern ends in a catch-all
func (p Pattern) HasWildcard() bool {
	return strings.HasSuffix(string(p), "*")
}

// Translate rebuilds the pattern using the given renderers for parameters and the wildcard
func (p Pattern) Translate(param func(name string) string, wildcard string) string {
	var sb strings.Builder
	for _, part := range p.Parts() {
		switch part.Type {
		case ParameterPart:
			sb.WriteString(param(part.Value))
		case WildcardPart:
			sb.WriteString(wildcard)
		default:
			sb.WriteString(part.Value)
		}
	}
	return sb.String()
}
