package library

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadJSON decodes a library snapshot from r and rebuilds the catalog.
//
// The input must be a JSON object with "id", "revision" and an "items"
// array; each item carries an "id" and a "meta" object. This is the format
// WriteJSON produces.
//
// The returned Library is independent of r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Library, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return FromSnapshot(&snap), nil
}

// WriteJSON encodes the catalog as an indented snapshot document.
func WriteJSON(w io.Writer, lib *Library, id string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(lib.Snapshot(id)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ImportJSON reads a library file at path.
func ImportJSON(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// ExportJSON writes a library file at path, creating or truncating it.
func ExportJSON(path string, lib *Library, id string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteJSON(f, lib, id); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
