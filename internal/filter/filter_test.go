package filter

import (
	"strings"
	"testing"

	"github.com/studiowebux/keycli/internal/types"
)

var sample = []types.ShortcutRecord{
	{Shortcut: "Command+T", Description: "New Tab", Context: "Terminal", Priority: 2},
	{Shortcut: "Command+N", Description: "New Window", Context: "Safari", Priority: 1},
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		contains   string
		excludes   string
	}{
		{
			name:       "filter by context",
			expression: "[?context=='Terminal']",
			contains:   "Command+T",
			excludes:   "Command+N",
		},
		{
			name:       "project shortcut field",
			expression: "[].shortcut",
			contains:   "Command+N",
			excludes:   "description",
		},
		{
			name:       "empty expression passes through",
			expression: "",
			contains:   "Command+T",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Apply(sample, tt.expression)
			if err != nil {
				t.Fatalf("Apply() error: %v", err)
			}
			if !strings.Contains(out, tt.contains) {
				t.Errorf("output missing %q:\n%s", tt.contains, out)
			}
			if tt.excludes != "" && strings.Contains(out, tt.excludes) {
				t.Errorf("output should not contain %q:\n%s", tt.excludes, out)
			}
		})
	}
}

func TestApplyInvalidExpression(t *testing.T) {
	if _, err := Apply(sample, "[?broken"); err == nil {
		t.Error("expected error for invalid expression")
	}
}

func TestApplyNoMatches(t *testing.T) {
	out, err := Apply(sample, "[?context=='Nothing'] | [0]")
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if out != "null" {
		t.Errorf("expected null for empty result, got %q", out)
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("[].shortcut") {
		t.Error("valid expression rejected")
	}
	if IsValid("[?oops") {
		t.Error("invalid expression accepted")
	}
}
