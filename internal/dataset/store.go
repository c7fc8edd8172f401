package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// filePerm is the mode for the written dataset file.
const filePerm = 0o644

// Load reads the dataset from path. A missing or malformed file is a
// fatal condition for the calling command; the error is returned as-is
// for the caller to propagate.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	var d Dataset
	if unmarshalErr := json.Unmarshal(data, &d); unmarshalErr != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, unmarshalErr)
	}

	if d.Coaches == nil {
		d.Coaches = []Coach{}
	}
	if d.Connections == nil {
		d.Connections = []Connection{}
	}
	d.reindex()

	return &d, nil
}

// Save writes the dataset to path in full, creating parent directories
// as needed. Output is 2-space indented UTF-8 JSON with HTML escaping
// disabled so names and snippets stay readable.
func (d *Dataset) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return fmt.Errorf("create dataset directory: %w", mkErr)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if encErr := enc.Encode(d); encErr != nil {
		return fmt.Errorf("encode dataset %s: %w", path, encErr)
	}

	return nil
}
