package utils

import (
	"strings"
)

// IsIn reports whether s is one of arr.
func IsIn(s string, arr []string) bool {
	for _, x := range arr {
		if s == x {
			return true
		}
	}
	return false
}

// IsInFold is IsIn with case-insensitive comparison.
func IsInFold(s string, arr []string) bool {
	for _, x := range arr {
		if strings.EqualFold(s, x) {
			return true
		}
	}
	return false
}
