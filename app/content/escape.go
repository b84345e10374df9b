package content

import "strings"

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer(`"`, "&quot;")
)

// EscapeText escapes the entities relevant in HTML text position. Applied
// to every interpolated value that did not pass through the sanitizer;
// never applied to already-sanitized fragments.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr escapes double quotes for attribute-value position. Values
// placed inside attributes go through EscapeText first.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
