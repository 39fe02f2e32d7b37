// Package utils holds parameter parsing and string helpers. Character classes
// (digits, letters, case) are ASCII only; lengths count runes.
package utils

import (
	"strings"
	"unicode/utf8"
)

// IsBlank reports whether s is empty or holds only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// RuneLen counts characters, not bytes.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// SplitList splits a delimited parameter and trims each token.
// Empty tokens are kept so "a,,b" still has three entries.
func SplitList(s string, sep string) []string {
	parts := strings.Split(s, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func HasDigit(s string) bool {
	return strings.ContainsFunc(s, isASCIIDigit)
}

func HasLetter(s string) bool {
	return strings.ContainsFunc(s, isASCIILetter)
}

func HasLower(s string) bool {
	return strings.ContainsFunc(s, isASCIILower)
}

func HasUpper(s string) bool {
	return strings.ContainsFunc(s, isASCIIUpper)
}

// AllDigits reports whether s is non-empty and made of ASCII digits only.
func AllDigits(s string) bool {
	return s != "" && !strings.ContainsFunc(s, func(r rune) bool { return !isASCIIDigit(r) })
}

// AllAlphaNumeric reports whether s is non-empty and made of ASCII letters and digits only.
func AllAlphaNumeric(s string) bool {
	return s != "" && !strings.ContainsFunc(s, func(r rune) bool {
		return !isASCIIDigit(r) && !isASCIILetter(r)
	})
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIILetter(r rune) bool {
	return isASCIILower(r) || isASCIIUpper(r)
}

func isASCIILower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isASCIIUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
