// Package filter applies JMESPath expressions to the merged record list,
// so CLI users can narrow or reshape the output without piping to
// external tools.
package filter

import (
	"encoding/json"
	"fmt"

	"github.com/jmespath/go-jmespath"
	"github.com/studiowebux/keycli/internal/types"
)

// Apply evaluates a JMESPath expression against the record list and
// returns the result as indented JSON. An empty expression returns the
// records unchanged.
func Apply(records []types.ShortcutRecord, expression string) (string, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to marshal records: %w", err)
	}

	if expression == "" {
		return indent(data)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}

	jp, err := jmespath.Compile(expression)
	if err != nil {
		return "", fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}

	result, err := jp.Search(doc)
	if err != nil {
		return "", fmt.Errorf("JMESPath search failed: %w", err)
	}
	if result == nil {
		return "null", nil
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(output), nil
}

// IsValid checks if an expression is valid JMESPath syntax.
func IsValid(expression string) bool {
	_, err := jmespath.Compile(expression)
	return err == nil
}

func indent(data []byte) (string, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	output, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(output), nil
}
