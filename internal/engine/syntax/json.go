package syntax

import "fmt"

// checkJSON tracks {} and [] depth outside double-quoted strings. An
// unterminated string runs on into the following lines.
func checkJSON(src Source) (Diagnostic, bool) {
	braces, brackets := 0, 0
	inString := false
	for row := 0; row < src.LineCount(); row++ {
		line := src.LineText(row)
		for i := 0; i < len(line); i++ {
			if quoteToggles(line, i) {
				inString = !inString
				continue
			}
			if inString {
				continue
			}
			switch line[i] {
			case '{':
				braces++
			case '}':
				braces--
				if braces < 0 {
					return at(row, i, "Extra '}' - no opening brace"), true
				}
			case '[':
				brackets++
			case ']':
				brackets--
				if brackets < 0 {
					return at(row, i, "Extra ']' - no opening bracket"), true
				}
			}
		}
	}
	if braces != 0 {
		return atEOF(src, fmt.Sprintf("Unclosed '{' - %d open brace(s)", braces)), true
	}
	if brackets != 0 {
		return atEOF(src, fmt.Sprintf("Unclosed '[' - %d open bracket(s)", brackets)), true
	}
	return Diagnostic{}, false
}
