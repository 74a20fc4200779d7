package utils

import "strings"

// OnlyDigits drops every rune of s outside 0-9. Used for CPF/CNPJ and postal codes.
func OnlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// TrimmedOrNil returns nil for a nil or blank pointer and the trimmed value otherwise.
func TrimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
