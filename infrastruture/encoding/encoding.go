// Package encoding provides the snapshot encoders used when persisting mazes.
package encoding

import (
	"encoding/json"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"gopkg.in/yaml.v3"
)

// Supported encoder names.
const (
	JSONName = "json"
	YAMLName = "yaml"
)

// JSON encodes values with encoding/json.
type JSON struct{}

func (JSON) Name() string        { return JSONName }
func (JSON) ContentType() string { return "application/json" }

func (JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// YAML encodes values with gopkg.in/yaml.v3.
type YAML struct{}

func (YAML) Name() string        { return YAMLName }
func (YAML) ContentType() string { return "application/yaml" }

func (YAML) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAML) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// ByName returns the encoder registered under name.
func ByName(name string) (i.Encoder, error) {
	switch name {
	case JSONName:
		return JSON{}, nil
	case YAMLName:
		return YAML{}, nil
	}
	return nil, fmt.Errorf("unknown encoding %q", name)
}
