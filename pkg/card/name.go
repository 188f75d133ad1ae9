package card

import "strings"

// TrimName extracts the card name from a raw decklist line.
//
// Surrounding whitespace is removed and, when the line starts with a decimal
// quantity, the whole leading digit run and the whitespace after it are
// dropped: "2 Birds of Paradise" becomes "Birds of Paradise". Only digits are
// consumed, so "10x Something" becomes "x Something". An empty result is
// returned as is.
func TrimName(line string) string {
	s := strings.TrimSpace(line)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return s
	}
	return strings.TrimSpace(s[i:])
}
