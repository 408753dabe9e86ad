package gtfs

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// SerializeIndex encodes a GTFSIndex to bytes using gob encoding.
// This is useful for disk-based caching to avoid re-downloading GTFS static data.
func SerializeIndex(index *GTFSIndex) ([]byte, error) {
	var buf bytes.Buffer
	if err := SerializeIndexToWriter(index, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeIndex decodes a GTFSIndex from bytes using gob encoding.
func DeserializeIndex(data []byte) (*GTFSIndex, error) {
	return DeserializeIndexFromReader(bytes.NewReader(data))
}

// SerializeIndexToFile writes a GTFSIndex to a file using gob encoding.
// The file is written next to the target and renamed, so readers never see a partial cache.
func SerializeIndexToFile(index *GTFSIndex, filepath string) error {
	data, err := SerializeIndex(index)
	if err != nil {
		return err
	}
	tmp := filepath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, filepath)
}

// DeserializeIndexFromFile reads a GTFSIndex from a file using gob encoding.
//
// Example:
//
//	index, err := gtfs.DeserializeIndexFromFile("/cache/gtfs-index.gob")
//	if err != nil {
//	    // Cache miss or corrupted, fetch fresh data
//	    index, _ = gtfs.NewGTFSIndexFromBytes(freshZipBytes)
//	}
func DeserializeIndexFromFile(filepath string) (*GTFSIndex, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	return DeserializeIndex(data)
}

// SerializeIndexToWriter writes a GTFSIndex to an io.Writer using gob encoding.
func SerializeIndexToWriter(index *GTFSIndex, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(index); err != nil {
		return fmt.Errorf("failed to encode GTFSIndex: %w", err)
	}
	return nil
}

// DeserializeIndexFromReader reads a GTFSIndex from an io.Reader using gob encoding.
func DeserializeIndexFromReader(r io.Reader) (*GTFSIndex, error) {
	var index GTFSIndex
	if err := gob.NewDecoder(r).Decode(&index); err != nil {
		return nil, fmt.Errorf("failed to decode GTFSIndex: %w", err)
	}
	return &index, nil
}
