package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/clubledger/pkg/club"
)

var ErrInvalidFixture = errors.New("invalid fixture")

// LoadFixture reads a club.Database from a YAML or JSON file. Field names are
// the JSON names of the club types, and payment history may mix bare date
// strings with records.
func LoadFixture(path string) (club.Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return club.Database{}, err
	}
	return ParseFixture(data)
}

// ParseFixture decodes fixture content. YAML is decoded into generic values
// and re-encoded as JSON so the club types' JSON decoding applies unchanged.
func ParseFixture(data []byte) (club.Database, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return club.Database{}, errors.Join(ErrInvalidFixture, err)
	}
	js, err := json.Marshal(raw)
	if err != nil {
		return club.Database{}, errors.Join(ErrInvalidFixture, err)
	}
	var db club.Database
	if err := json.Unmarshal(js, &db); err != nil {
		return club.Database{}, errors.Join(ErrInvalidFixture, fmt.Errorf("decode: %w", err))
	}
	return db, nil
}
