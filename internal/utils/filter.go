package utils

// IsLetter reports whether r is an ASCII letter.
func IsLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// ContainsNonLetters checks if a string holds anything but ASCII letters
func ContainsNonLetters(s string) bool {
	for _, r := range s {
		if !IsLetter(r) {
			return true
		}
	}
	return false
}

// IsValidInput checks if input should be processed for completions.
// Only non-empty runs of ASCII letters qualify.
func IsValidInput(s string) bool {
	return len(s) > 0 && !ContainsNonLetters(s)
}
