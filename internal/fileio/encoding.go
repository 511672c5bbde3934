package fileio

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names the character encoding detected on load.
type Encoding string

const (
	EncodingUTF8    Encoding = "utf-8"
	EncodingUTF8BOM Encoding = "utf-8-bom"
	EncodingUTF16LE Encoding = "utf-16le"
	EncodingUTF16BE Encoding = "utf-16be"
	EncodingASCII   Encoding = "ascii"
	EncodingBinary  Encoding = "binary"
)

// LineEnding is the dominant line terminator of a file.
type LineEnding string

const (
	LineEndingLF    LineEnding = "lf"
	LineEndingCRLF  LineEnding = "crlf"
	LineEndingMixed LineEnding = "mixed"
)

// BOM (Byte Order Mark) constants
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectEncoding reports the encoding of raw file content. BOM markers win;
// otherwise content is UTF-8 (or plain ASCII) when valid, and binary when
// not.
func DetectEncoding(content []byte) Encoding {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return EncodingUTF8BOM
	case bytes.HasPrefix(content, bomUTF16LE):
		return EncodingUTF16LE
	case bytes.HasPrefix(content, bomUTF16BE):
		return EncodingUTF16BE
	case !utf8.Valid(content):
		return EncodingBinary
	}
	for _, b := range content {
		if b >= utf8.RuneSelf {
			return EncodingUTF8
		}
	}
	return EncodingASCII
}

// DetectLineEnding reports whether content uses LF, CRLF or both.
func DetectLineEnding(content []byte) LineEnding {
	var lf, crlf int
	for i, b := range content {
		if b != '\n' {
			continue
		}
		if i > 0 && content[i-1] == '\r' {
			crlf++
		} else {
			lf++
		}
	}
	switch {
	case lf > 0 && crlf > 0:
		return LineEndingMixed
	case crlf > 0:
		return LineEndingCRLF
	default:
		return LineEndingLF
	}
}

// Decode strips a leading byte order mark. A UTF-16 BOM also switches the
// content to UTF-8; content without a BOM passes through untouched.
func Decode(content []byte) ([]byte, error) {
	if !hasBOM(content) {
		return content, nil
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), content)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// hasBOM reports whether content starts with any supported BOM.
func hasBOM(content []byte) bool {
	return bytes.HasPrefix(content, bomUTF8) ||
		bytes.HasPrefix(content, bomUTF16LE) ||
		bytes.HasPrefix(content, bomUTF16BE)
}

// SplitLines breaks content at '\n' and drops one trailing '\r' from each
// line. A final terminator does not produce an extra empty line.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	content = bytes.TrimSuffix(content, []byte{'\n'})
	parts := bytes.Split(content, []byte{'\n'})
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = string(bytes.TrimSuffix(p, []byte{'\r'}))
	}
	return lines
}

// JoinLines renders lines for disk, each followed by '\n'.
func JoinLines(lines []string) []byte {
	n := 0
	for _, l := range lines {
		n += len(l) + 1
	}
	out := make([]byte, 0, n)
	for _, l := range lines {
		out = append(out, l...)
		out = append(out, '\n')
	}
	return out
}
