package openapi

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/spf13/afero"

	"github.com/bmcpi/redfish-modelgen/internal/modelerr"
)

// unmarshalBytes normalizes YAML to JSON (via ghodss/yaml, which round-trips
// through encoding/json) and dispatches on extension: ".yml" and ".yaml" are
// YAML, ".json" is JSON, anything else is a fatal configuration error.
func unmarshalBytes(path string, data []byte, out interface{}) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: %s: %v", modelerr.ErrParse, path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: %s: %v", modelerr.ErrParse, path, err)
		}
	default:
		return fmt.Errorf("%w: unsupported file extension %q for %s", modelerr.ErrArgument, ext, path)
	}
	return nil
}

// Load reads a full OpenAPI document from path through fs. Every file read
// in the pipeline is routed through an afero.Fs so the whole pipeline is
// testable against afero.NewMemMapFs().
func Load(fs afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", modelerr.ErrIO, path, err)
	}
	doc := &Document{}
	if err := unmarshalBytes(path, data, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadPartial reads a file that carries only components.schemas, tolerating
// the absence of the OpenAPI top-level required fields. Used for referenced
// schema files and sibling-version fragment files.
func LoadPartial(fs afero.Fs, path string) (*PartialDocument, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", modelerr.ErrIO, path, err)
	}
	doc := &PartialDocument{}
	if err := unmarshalBytes(path, data, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
