package syntax

// checkYAML rejects tabs anywhere and unbalanced flow collections within a
// line.
func checkYAML(src Source) (Diagnostic, bool) {
	for row := 0; row < src.LineCount(); row++ {
		line := src.LineText(row)
		for i := 0; i < len(line); i++ {
			if line[i] == '\t' {
				return at(row, i, "YAML: TAB not allowed - use spaces"), true
			}
		}

		braces, brackets := 0, 0
		for i := 0; i < len(line); i++ {
			switch line[i] {
			case '{':
				braces++
			case '}':
				braces--
			case '[':
				brackets++
			case ']':
				brackets--
			}
			if braces < 0 || brackets < 0 {
				return at(row, i, "Bracket balance broken"), true
			}
		}
		if braces != 0 || brackets != 0 {
			return Diagnostic{
				Line:     row + 1,
				ColStart: 0,
				ColEnd:   len(line),
				Message:  "Bracket not closed",
			}, true
		}
	}
	return Diagnostic{}, false
}
