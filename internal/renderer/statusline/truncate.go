package statusline

import "github.com/rivo/uniseg"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// Truncate shortens s to at most limit columns. When s does not fit, as
// many whole graphemes as fit are kept and Ellipsis is appended. A limit
// too small to hold the ellipsis yields the bare prefix.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if Width(s) <= limit {
		return s
	}
	room := limit - Width(Ellipsis)
	suffix := Ellipsis
	if room < 0 {
		room = limit
		suffix = ""
	}

	used, cut := 0, 0
	rest := s
	state := -1
	for len(rest) > 0 {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+width > room {
			break
		}
		used += width
		cut += len(cluster)
	}
	return s[:cut] + suffix
}
