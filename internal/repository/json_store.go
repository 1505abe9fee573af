package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// NewJSONStore creates a Store backed by plain JSON files under dir.
// Each domain gets its own <domain>_user_input.json file; snapshots and
// cached advice live in risk_scores_history.json and advice_cache.json.
func NewJSONStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Store{
		Records:   &jsonRecordRepo{dir: dir},
		Snapshots: &jsonSnapshotRepo{path: filepath.Join(dir, "risk_scores_history.json")},
		Advice:    &jsonAdviceCache{path: filepath.Join(dir, "advice_cache.json")},
	}, nil
}

// readJSONFile unmarshals the file at path into out.
// A missing file is not an error; out is left untouched.
func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// writeJSONFile marshals v and writes it atomically: write to a temp file
// in the same directory, then rename over the target.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}
