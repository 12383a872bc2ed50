package shared

// Ellipsize shortens s to at most n runes for column display, marking the cut
// with a trailing "…". Multi-byte characters are never split. When n <= 0 it
// returns an empty string.
func Ellipsize(s string, n int) string {
	if n <= 0 || s == "" {
		return ""
	}
	count := 0
	for idx := range s {
		if count == n-1 {
			if rest := s[idx:]; len([]rune(rest)) > 1 {
				return s[:idx] + "…"
			}
			return s
		}
		count++
	}
	return s
}
