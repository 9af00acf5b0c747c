package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"dsa-catalog/internal/domain"

	"gopkg.in/yaml.v3"
)

// Document is the JSON form of a catalog, shaped like the web UI's module exports.
type Document struct {
	Categories []string        `json:"categories" yaml:"categories"`
	Topics     []*domain.Topic `json:"topics" yaml:"topics"`
}

// Export writes the catalog as an indented JSON document.
func Export(w io.Writer, c *Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Document{Categories: c.Categories(), Topics: c.All()}); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return nil
}

// Import reads a JSON document written by Export. Unknown fields are rejected
// so typos in hand-edited content files surface early.
func Import(r io.Reader) (*Catalog, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return fromDocument(doc)
}

// ExportYAML writes the catalog as YAML, which keeps multi-line code and
// pseudocode readable for content authors.
func ExportYAML(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Categories: c.Categories(), Topics: c.All()}); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush catalog: %w", err)
	}
	return nil
}

// ImportYAML reads a YAML document written by ExportYAML. Unknown fields are rejected.
func ImportYAML(r io.Reader) (*Catalog, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return fromDocument(doc)
}

// fromDocument rejects null topic entries, which New would otherwise skip
// before validation could report them.
func fromDocument(doc Document) (*Catalog, error) {
	for i, t := range doc.Topics {
		if t == nil {
			return nil, fmt.Errorf("topics[%d] is empty", i)
		}
	}
	return New(doc.Categories, doc.Topics), nil
}
