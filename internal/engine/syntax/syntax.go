package syntax

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Language is the closed set of file categories the checker understands.
type Language int

const (
	LanguageNone Language = iota
	LanguageJSON
	LanguageYAML
	LanguagePython
	LanguageMarkup
	LanguageBraceBlock
)

var languageNames = map[Language]string{
	LanguageNone:       "none",
	LanguageJSON:       "json",
	LanguageYAML:       "yaml",
	LanguagePython:     "python",
	LanguageMarkup:     "markup",
	LanguageBraceBlock: "brace-block",
}

// String returns the category name.
func (l Language) String() string {
	if s, ok := languageNames[l]; ok {
		return s
	}
	return "unknown"
}

var extensions = map[string]Language{
	".json": LanguageJSON,
	".yml":  LanguageYAML,
	".yaml": LanguageYAML,
	".py":   LanguagePython,
	".html": LanguageMarkup,
	".htm":  LanguageMarkup,
	".xml":  LanguageMarkup,
	".java": LanguageBraceBlock,
	".c":    LanguageBraceBlock,
	".cpp":  LanguageBraceBlock,
	".go":   LanguageBraceBlock,
	".h":    LanguageBraceBlock,
	".hpp":  LanguageBraceBlock,
}

// DetectLanguage picks the category from the file name's extension,
// compared case-insensitively.
func DetectLanguage(filename string) Language {
	ext := strings.ToLower(filepath.Ext(filename))
	if lang, ok := extensions[ext]; ok {
		return lang
	}
	return LanguageNone
}

// Source is the read side of a document.
type Source interface {
	LineCount() int
	LineText(row int) string
}

// Diagnostic is a single balance violation. Line is 1-based; columns are
// byte offsets. ColEnd == ColStart means the whole line is implicated.
type Diagnostic struct {
	Line     int
	ColStart int
	ColEnd   int
	Message  string
}

// WholeLine reports whether the diagnostic covers its line rather than a
// column span.
func (d Diagnostic) WholeLine() bool {
	return d.ColEnd == d.ColStart
}

// String returns the status-line form of the diagnostic.
func (d Diagnostic) String() string {
	return fmt.Sprintf("L%d: %s", d.Line, d.Message)
}

type checker func(src Source) (Diagnostic, bool)

var checkers = map[Language]checker{
	LanguageJSON:       checkJSON,
	LanguageYAML:       checkYAML,
	LanguagePython:     checkPython,
	LanguageMarkup:     checkMarkup,
	LanguageBraceBlock: checkBraceBlock,
}

// Check scans src as lang and returns the first violation found top to
// bottom, left to right.
func Check(lang Language, src Source) (Diagnostic, bool) {
	c, ok := checkers[lang]
	if !ok {
		return Diagnostic{}, false
	}
	return c(src)
}

// CheckFile is Check with the language taken from filename.
func CheckFile(filename string, src Source) (Diagnostic, bool) {
	return Check(DetectLanguage(filename), src)
}

// at builds a diagnostic for a single byte at col of the 0-based row.
func at(row, col int, msg string) Diagnostic {
	return Diagnostic{Line: row + 1, ColStart: col, ColEnd: col + 1, Message: msg}
}

// atEOF builds a whole-line diagnostic on the last line of src.
func atEOF(src Source, msg string) Diagnostic {
	return Diagnostic{Line: src.LineCount(), Message: msg}
}

// quoteToggles reports whether the byte at i opens or closes a
// double-quoted string, honouring backslash escapes.
func quoteToggles(line string, i int) bool {
	return line[i] == '"' && (i == 0 || line[i-1] != '\\')
}
