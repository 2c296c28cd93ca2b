// Copyright (c) 2025 pointmoney
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"testing"
)

func TestFormatPoints(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected string
	}{
		{name: "zero", input: 0, expected: "0 pt"},
		{name: "small balance", input: 42, expected: "42 pt"},
		{name: "thousands separator", input: 1500, expected: "1,500 pt"},
		{name: "millions", input: 1234567, expected: "1,234,567 pt"},
		{name: "negative balance", input: -1500, expected: "-1,500 pt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatPoints(tt.input)
			if result != tt.expected {
				t.Errorf("formatPoints(%d) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFieldLabel(t *testing.T) {
	if got := fieldLabel("Identifier"); got != "Login ID or email" {
		t.Errorf("fieldLabel(Identifier) = %q", got)
	}
	if got := fieldLabel("Email"); got != "Email" {
		t.Errorf("fieldLabel(Email) = %q, want passthrough", got)
	}
}
