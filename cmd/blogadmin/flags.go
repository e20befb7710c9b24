package main

import "strings"

// flagName returns the name of a "-name", "--name" or "-name=value"
// argument, or "" for a non-flag argument.
func flagName(arg string) string {
	if !strings.HasPrefix(arg, "-") {
		return ""
	}
	name := strings.TrimLeft(arg, "-")
	name, _, _ = strings.Cut(name, "=")
	return name
}

func hasInlineValue(arg string) bool {
	return strings.Contains(arg, "=")
}
