package syntax

// checkPython flags indentation that mixes tabs and spaces. The reported
// column is the later of the first tab and the first space.
func checkPython(src Source) (Diagnostic, bool) {
	for row := 0; row < src.LineCount(); row++ {
		line := src.LineText(row)
		firstTab, firstSpace := -1, -1
		for i := 0; i < len(line) && (line[i] == ' ' || line[i] == '\t'); i++ {
			if line[i] == '\t' && firstTab < 0 {
				firstTab = i
			}
			if line[i] == ' ' && firstSpace < 0 {
				firstSpace = i
			}
		}
		if firstTab >= 0 && firstSpace >= 0 {
			return at(row, max(firstTab, firstSpace), "Mixed TAB and spaces - use one"), true
		}
	}
	return Diagnostic{}, false
}
