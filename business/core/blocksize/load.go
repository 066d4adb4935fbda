package blocksize

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load opens and consumes a parameter bundle. Files ending in .yaml or
// .yml are decoded as YAML, everything else as JSON. The bundle is not
// validated here, Evaluate does that.
func Load(path string) (Params, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("reading params: %w", err)
	}

	var p Params
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &p); err != nil {
			return Params{}, fmt.Errorf("decoding yaml params %q: %w", path, err)
		}

	default:
		if err := json.Unmarshal(content, &p); err != nil {
			return Params{}, fmt.Errorf("decoding json params %q: %w", path, err)
		}
	}

	return p, nil
}
