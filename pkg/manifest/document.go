package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Document is the top level of a YAML or JSON manifest
type Document struct {
	Config *ModuleSpec `yaml:"config"`
}

// ModuleSpec is the declarative form of archipelago.Config
type ModuleSpec struct {
	Ignore bool           `yaml:"ignore"`
	Routes []RouteSpec    `yaml:"routes" validate:"dive"`
	Meta   map[string]any `yaml:"meta"`
}

// RouteSpec names the handlers bound to one method
type RouteSpec struct {
	Method   string   `yaml:"method" validate:"required"`
	Handlers []string `yaml:"handlers" validate:"min=1,dive,required"`
}

// decodeDocument reads a YAML or JSON manifest. Empty input and a missing
// config key both mean the module exports no config
func decodeDocument(data []byte) (*ModuleSpec, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return doc.Config, nil
}
