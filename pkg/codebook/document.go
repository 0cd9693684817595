package codebook

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// EncodeJSON writes the codebook as an indented JSON document.
func EncodeJSON(w io.Writer, cb *Codebook) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cb.normalized())
}

// DecodeJSON reads and validates a JSON codebook document.
func DecodeJSON(r io.Reader) (*Codebook, error) {
	var cb Codebook
	if err := json.NewDecoder(r).Decode(&cb); err != nil {
		return nil, fmt.Errorf("decode json codebook: %w", err)
	}
	return finish(&cb)
}

// EncodeYAML writes the codebook as a YAML document.
func EncodeYAML(w io.Writer, cb *Codebook) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cb.normalized()); err != nil {
		return fmt.Errorf("encode yaml codebook: %w", err)
	}
	return enc.Close()
}

// DecodeYAML reads and validates a YAML codebook document.
func DecodeYAML(r io.Reader) (*Codebook, error) {
	var cb Codebook
	if err := yaml.NewDecoder(r).Decode(&cb); err != nil {
		return nil, fmt.Errorf("decode yaml codebook: %w", err)
	}
	return finish(&cb)
}

func finish(cb *Codebook) (*Codebook, error) {
	for i := range cb.Variables {
		cb.Variables[i].DataType = DataType(strings.ToUpper(string(cb.Variables[i].DataType)))
	}
	if err := cb.Validate(); err != nil {
		return nil, err
	}
	return cb, nil
}

// normalized returns a copy whose nil lists encode as empty lists.
func (c *Codebook) normalized() *Codebook {
	out := *c
	if out.Variables == nil {
		out.Variables = []Variable{}
	}
	m := &out.Metadata
	for _, list := range []*[]string{&m.Domains, &m.Tags, &m.SimilarDatasets} {
		if *list == nil {
			*list = []string{}
		}
	}
	return &out
}
