package ui

import "strconv"

// formatPoints renders a score at full precision: no rounding, no padding
// with trailing zeros. The diff engine compares exact values, so the display
// shows exact values too.
func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
