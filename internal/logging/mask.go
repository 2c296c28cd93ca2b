// Copyright (c) 2025 pointmoney
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides utilities for secure logging and error
// presentation. Mask strips credentials and icon payloads from text before
// it reaches the terminal or a log line, so a failed login can never echo
// the password back.
package logging

import (
	"regexp"
)

var (
	rePassword = regexp.MustCompile(`(?i)(password=)([^\s;]+)`)
	rePassJSON = regexp.MustCompile(`(?i)("password(?:_confirm)?"\s*:\s*")([^"]*)(")`)
	reDataURI  = regexp.MustCompile(`(data:[a-z]+/[a-z0-9.+-]+;base64,)[A-Za-z0-9+/=]+`)
	reLongB64  = regexp.MustCompile(`\b[A-Za-z0-9+/]{64,}={0,2}\b`)
)

// Mask replaces sensitive values in the input string with "***".
// Long base64 runs are truncated because custom icons travel as inline
// base64 and would otherwise flood error output.
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = rePassJSON.ReplaceAllString(out, "$1***$3")
	out = reDataURI.ReplaceAllString(out, "$1***")
	out = reLongB64.ReplaceAllString(out, "***")
	return out
}
