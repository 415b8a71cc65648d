package users

import "strings"

// Initials derives up to two uppercase initials from a display name.
// Empty or whitespace-only names fall back to "U".
func Initials(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "U"
	}
	if len(fields) > 2 {
		fields = fields[:2]
	}
	var b strings.Builder
	for _, word := range fields {
		runes := []rune(word)
		b.WriteString(strings.ToUpper(string(runes[0])))
	}
	return b.String()
}
