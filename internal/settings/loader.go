package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/klauspost/compress/gzip"
)

// Loader errors.
var (
	// ErrSnapshotInvalid indicates a settings document failed validation.
	ErrSnapshotInvalid = errors.New("invalid settings snapshot")
)

// ValueError describes why a key in a settings document was rejected.
type ValueError struct {
	Key     string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid settings snapshot: %s: %s", e.Key, e.Message)
}

func (e *ValueError) Unwrap() error {
	return ErrSnapshotInvalid
}

var jsonapi = jsoniter.ConfigCompatibleWithStandardLibrary

// Read parses a flat JSON settings document into a Snapshot.
//
// The document must be a single JSON object whose values are strings or
// integers; nested objects, arrays, booleans, fractional numbers, and nulls
// are rejected with a ValueError naming the offending key. An empty object
// yields an empty snapshot.
func Read(r io.Reader) (*Snapshot, error) {
	dec := jsonapi.NewDecoder(r)
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode settings document: %w", err)
	}

	b := NewBuilder()
	for key, raw := range doc {
		switch v := raw.(type) {
		case string:
			b.PutString(key, v)
		case json.Number:
			n, err := v.Int64()
			if err != nil {
				return nil, &ValueError{Key: key, Message: fmt.Sprintf("number %s is not an integer", v)}
			}
			b.PutInt(key, int(n))
		default:
			return nil, &ValueError{Key: key, Message: "must be a string or an integer"}
		}
	}
	return b.Build(), nil
}

// Load reads a settings document from path. Files ending in ".gz" are
// decompressed transparently.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open settings file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip settings file %s: %w", path, err)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	s, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("load settings from %s: %w", path, err)
	}
	return s, nil
}
