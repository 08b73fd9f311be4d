package render

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"measure/pkg/suite"
	"measure/pkg/table"
)

// Document is the structured form of a suite report.
type Document struct {
	RunID   string          `yaml:"run_id,omitempty"`
	Suite   string          `yaml:"suite"`
	Studies []StudyDocument `yaml:"studies"`
}

// StudyDocument holds the table of one study. Rows keep the column order
// and omit undefined cells.
type StudyDocument struct {
	Label   string    `yaml:"label"`
	Columns []string  `yaml:"columns"`
	Rows    []yamlRow `yaml:"rows"`
}

type yamlRow struct {
	headers []table.Header
	row     table.Row[string]
}

// MarshalYAML encodes the row as a mapping ordered like the columns.
func (r yamlRow) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, h := range r.headers {
		v, ok := r.row[h.ID]
		if !ok {
			continue
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: h.ID},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v},
		)
	}
	return node, nil
}

// NewDocument builds the document of a suite named name.
func NewDocument(runID, name string, entries Tables) Document {
	doc := Document{RunID: runID, Suite: name, Studies: make([]StudyDocument, 0, len(entries))}
	for _, e := range entries {
		headers := e.Value.Headers()
		study := StudyDocument{Label: e.Label, Columns: make([]string, len(headers))}
		for i, h := range headers {
			study.Columns[i] = h.ID
		}
		for _, row := range e.Value.Rows() {
			study.Rows = append(study.Rows, yamlRow{headers: headers, row: row})
		}
		doc.Studies = append(doc.Studies, study)
	}
	return doc
}

// YAML returns a renderer encoding the report as a YAML document. runID is
// recorded when not empty.
func YAML(runID string) suite.Renderer[*table.Table[string], string] {
	return func(name string, entries Tables) (string, error) {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(runID, name, entries)); err != nil {
			return "", fmt.Errorf("encode yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("encode yaml report: %w", err)
		}
		return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
	}
}
