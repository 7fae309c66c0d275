package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadRecords reads an import file and returns one JSON document per record.
// The format is picked by extension: YAML (.yaml/.yml) or JSON (.json), both
// with a top-level `records` list.
func LoadRecords(path string) ([][]byte, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("records file path is empty")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records file: %w", err)
	}

	var records [][]byte
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		records, err = parseYAMLRecords(raw)
	case ".json":
		records, err = parseJSONRecords(raw)
	default:
		return nil, fmt.Errorf("records file format %q not recognized (expected .yaml, .yml or .json)", ext)
	}
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("records file contains no records entries")
	}
	return records, nil
}

// parseYAMLRecords decodes YAML records and re-encodes each as JSON so that
// downstream handling is format-independent.
func parseYAMLRecords(raw []byte) ([][]byte, error) {
	var f struct {
		Records []map[string]any `yaml:"records"`
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode yaml records: %w", err)
	}
	out := make([][]byte, 0, len(f.Records))
	for i, rec := range f.Records {
		buf, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("records[%d]: %w", i, err)
		}
		out = append(out, buf)
	}
	return out, nil
}

func parseJSONRecords(raw []byte) ([][]byte, error) {
	var f struct {
		Records []json.RawMessage `json:"records"`
	}
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode json records: %w", err)
	}
	out := make([][]byte, 0, len(f.Records))
	for _, rec := range f.Records {
		out = append(out, []byte(rec))
	}
	return out, nil
}

// importRecords bulk-inserts every record in the file and returns the created
// rows. It fails fast on the first record the backend rejects.
func (c *Ctl) importRecords(ctx context.Context, entity, path string) (any, error) {
	records, err := LoadRecords(path)
	if err != nil {
		return nil, err
	}

	created := make([]any, 0, len(records))
	for i, rec := range records {
		res, err := c.insert(ctx, entity, rec)
		if err != nil {
			return nil, fmt.Errorf("records[%d]: %w", i, err)
		}
		created = append(created, res)
	}
	c.log.Infow("import finished", "entity", entity, "count", len(created))
	return created, nil
}
