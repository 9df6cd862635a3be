package utils

import (
	"strconv"
	"strings"
)

// CapitalInfo records where a query carried uppercase letters.
type CapitalInfo struct {
	positions []int
}

// ProcessCapitals returns the lowercase form of s and the capitals it held,
// or nil info when s has none.
func ProcessCapitals(s string) (string, *CapitalInfo) {
	var info *CapitalInfo
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			if info == nil {
				info = &CapitalInfo{}
			}
			info.positions = append(info.positions, i)
		}
	}
	return strings.ToLower(s), info
}

// Apply uppercases word at the recorded positions, skipping positions
// past its end.
func (ci *CapitalInfo) Apply(word string) string {
	if ci == nil {
		return word
	}
	b := []byte(word)
	for _, pos := range ci.positions {
		if pos < len(b) && b[pos] >= 'a' && b[pos] <= 'z' {
			b[pos] -= 'a' - 'A'
		}
	}
	return string(b)
}

// FormatWithCommas renders n with thousands separators.
func FormatWithCommas(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
