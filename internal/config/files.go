package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// loadFiles reads every file in order and deep-merges their bundle trees.
// Mappings are merged key by key; lists and scalars from later files replace
// earlier ones.
func loadFiles(paths []string, rootKey string) (map[string]any, error) {
	tree := make(map[string]any)

	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}

		doc, err := parseFile(path)
		if err != nil {
			return nil, err
		}

		if err = mergo.Merge(&tree, subtree(doc, rootKey), mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging config file %s: %w", path, err)
		}
	}

	return tree, nil
}

// parseFile decodes a YAML (.yaml, .yml) or JSON (.json) document into a
// generic mapping.
func parseFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	doc := make(map[string]any)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("error decoding yaml config %s: %w", path, err)
		}
	case ".json":
		if err = json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("error decoding json config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q (%s)", ErrUnsupportedConfigFormat, ext, path)
	}

	return doc, nil
}

// subtree returns doc[rootKey] when it is a mapping, otherwise doc itself.
func subtree(doc map[string]any, rootKey string) map[string]any {
	if nested, ok := doc[rootKey].(map[string]any); ok {
		return nested
	}
	if _, present := doc[rootKey]; present && doc[rootKey] == nil {
		// "root_key:" with nothing below it
		return map[string]any{}
	}
	return doc
}
