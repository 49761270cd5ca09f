package metadata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrInvalidDocument is returned when a metadata document cannot be decoded.
var ErrInvalidDocument = errors.New("❌ invalid version metadata")

// Decode reads a JSON metadata document. Structural validation belongs to the
// layer that produced the document and is not repeated here.
func Decode(r io.Reader) (*Version, error) {
	var v Version
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return &v, nil
}

// Load decodes the metadata document at path.
func Load(path string) (*Version, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata: %w", err)
	}
	defer f.Close()

	v, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
