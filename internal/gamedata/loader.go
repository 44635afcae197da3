package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Load reads an embedded JSON file and decodes it into T.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	return Decode[T](filename, content)
}

// Decode strictly decodes JSON content into T. Unknown fields are rejected so
// that typos in data files surface as errors instead of silent zero values.
func Decode[T any](name string, content []byte) (T, error) {
	var result T

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", name, err)
	}

	return result, nil
}

// MustLoad reads and decodes a JSON file, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}
