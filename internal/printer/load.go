package printer

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ruleFile is the YAML layout read by LoadRules:
//
//	tags:
//	  b:
//	    element: strong
//	  url:
//	    element: a
//	    value: required
//	    attr: href
//	    pattern: https?://\S+
type ruleFile struct {
	Tags map[string]RenderRule `yaml:"tags"`
}

// LoadRules decodes a YAML rule table and validates it with NewRuleTable.
// Unknown fields are rejected.
func LoadRules(data []byte) (*RuleTable, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file ruleFile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to parse rules: %v", ErrInvalidRule, err)
	}
	return NewRuleTable(file.Tags)
}

// MarshalRules encodes the rules of t in the format LoadRules reads.
func MarshalRules(t *RuleTable) ([]byte, error) {
	data, err := yaml.Marshal(ruleFile{Tags: t.Rules()})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rules: %w", err)
	}
	return data, nil
}
