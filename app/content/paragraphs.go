package content

import "regexp"

// Matches a paragraph whose only content is whitespace. Paragraphs holding
// non-text markup (an image, a nested list) are left alone.
var emptyParagraphRe = regexp.MustCompile(`(?i)<p>\s*</p>`)

type ParagraphStripper struct{}

func NewParagraphStripper() *ParagraphStripper {
	return &ParagraphStripper{}
}

// Run removes whitespace-only paragraph elements, case-insensitively.
// Removal can expose a new empty pair (nested paragraphs in malformed
// feeds), so it iterates to a fixpoint; that also makes Run idempotent.
func (s *ParagraphStripper) Run(html string) string {
	for {
		stripped := emptyParagraphRe.ReplaceAllString(html, "")
		if stripped == html {
			return stripped
		}
		html = stripped
	}
}
