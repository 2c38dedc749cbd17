package config

import (
	"fmt"
	"strings"
)

// ParseOutputFormat converts a user-supplied format name, ignoring case.
func ParseOutputFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	if !format.IsValid() {
		return "", fmt.Errorf("unknown output format %q (expected text or json)", s)
	}
	return format, nil
}

// ParseColorMode converts a user-supplied color mode, ignoring case.
func ParseColorMode(s string) (ColorMode, error) {
	mode := ColorMode(strings.ToLower(strings.TrimSpace(s)))
	if !mode.IsValid() {
		return "", fmt.Errorf("unknown color mode %q (expected auto, always or never)", s)
	}
	return mode, nil
}
