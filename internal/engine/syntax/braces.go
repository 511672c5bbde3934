package syntax

import "fmt"

// checkBraceBlock tracks {} depth for C-like sources, skipping string
// literals, line comments and block comments. Block comments and
// unterminated strings carry over into the following lines.
func checkBraceBlock(src Source) (Diagnostic, bool) {
	depth := 0
	inComment, inString := false, false
	for row := 0; row < src.LineCount(); row++ {
		line := src.LineText(row)
	scan:
		for i := 0; i < len(line); i++ {
			c := line[i]
			next := byte(0)
			if i+1 < len(line) {
				next = line[i+1]
			}
			switch {
			case inComment:
				if c == '*' && next == '/' {
					inComment = false
					i++
				}
			case quoteToggles(line, i):
				inString = !inString
			case inString:
			case c == '/' && next == '/':
				break scan
			case c == '/' && next == '*':
				inComment = true
				i++
			case c == '{':
				depth++
			case c == '}':
				depth--
				if depth < 0 {
					return at(row, i, "Extra '}' - no opening brace"), true
				}
			}
		}
	}
	if depth != 0 {
		return atEOF(src, fmt.Sprintf("Unclosed '{' - %d open brace(s)", depth)), true
	}
	return Diagnostic{}, false
}
