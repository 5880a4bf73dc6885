// Package seed loads sets, cards and conditions from YAML documents and
// applies them through the business layer.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML string

type Set struct {
	SetCode     string `yaml:"set_code"`
	SetName     string `yaml:"set_name"`
	ReleaseDate string `yaml:"release_date"`
	Era         string `yaml:"era"`
}

// Card names its set by set_code so documents stay independent of ids.
type Card struct {
	SetCode    string `yaml:"set_code"`
	CardNumber string `yaml:"card_number"`
	CardName   string `yaml:"card_name"`
	Rarity     string `yaml:"rarity"`
	CardType   string `yaml:"card_type"`
}

type Condition struct {
	ConditionCode string `yaml:"condition_code"`
	Description   string `yaml:"description"`
}

type Document struct {
	Sets       []Set       `yaml:"sets"`
	Cards      []Card      `yaml:"cards"`
	Conditions []Condition `yaml:"conditions"`
}

// Parse decodes a single YAML document. Unknown keys are rejected and an
// empty input yields an empty document.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse seed document: %w", err)
	}
	return &doc, nil
}

func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Defaults returns the built-in condition scale.
func Defaults() *Document {
	doc, err := Parse(strings.NewReader(defaultsYAML))
	if err != nil {
		panic(err)
	}
	return doc
}
