package syntax

import "fmt"

// checkMarkup counts opening and closing tags. Declarations (<!) and
// processing instructions (<?) do not count. Every other "<x" opens a tag,
// self-closing forms such as <br/> included.
func checkMarkup(src Source) (Diagnostic, bool) {
	depth := 0
	for row := 0; row < src.LineCount(); row++ {
		line := src.LineText(row)
		for i := 0; i+1 < len(line); i++ {
			if line[i] != '<' {
				continue
			}
			switch line[i+1] {
			case '!', '?':
			case '/':
				depth--
				if depth < 0 {
					return Diagnostic{
						Line:     row + 1,
						ColStart: i,
						ColEnd:   i + 2,
						Message:  "Extra closing tag - no opening tag",
					}, true
				}
			default:
				depth++
			}
		}
	}
	if depth != 0 {
		return atEOF(src, fmt.Sprintf("Unclosed tag - %d open tag(s)", depth)), true
	}
	return Diagnostic{}, false
}
