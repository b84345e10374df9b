package content

import (
	"cmp"
	"strings"

	"github.com/JaydeCohenDev/folklore-hunter-news/app/feed"
)

// Defaults substituted for missing optional item fields. Substitution is
// informational, never an error.
const (
	DefaultTitle = "Untitled"
	DefaultLink  = "#"
)

// Normalizer turns one raw feed item into one Article. The body pipeline
// is fixed: select body field, unwrap linkfilter URLs, strip empty
// paragraphs, sanitize, then strip again since sanitization can leave a
// freshly emptied paragraph behind.
type Normalizer struct {
	unwrapper *Unwrapper
	stripper  *ParagraphStripper
	sanitizer *Sanitizer
}

func NewNormalizer(sanitizer *Sanitizer) *Normalizer {
	return &Normalizer{
		unwrapper: NewUnwrapper(),
		stripper:  NewParagraphStripper(),
		sanitizer: sanitizer,
	}
}

// Run never fails: a missing subfield degrades to its default. The item's
// own link field passes through untouched; only linkfilter URLs embedded
// in the body HTML are unwrapped. The date stays verbatim, no reparsing.
func (n *Normalizer) Run(item feed.Item) Article {
	body := cmp.Or(item.Content, item.Description)

	html := n.unwrapper.Run(body)
	html = n.stripper.Run(html)
	html = n.sanitizer.Run(html)
	html = n.stripper.Run(html)

	return Article{
		Title: cmp.Or(strings.TrimSpace(item.Title), DefaultTitle),
		URL:   cmp.Or(item.Link, DefaultLink),
		Date:  item.PubDate,
		HTML:  strings.TrimSpace(html),
	}
}

// Builder normalizes a full item list and truncates it to the configured
// maximum, preserving feed order.
type Builder struct {
	normalizer *Normalizer
	maxCount   int
}

// NewBuilder expects maxCount to be validated as positive at startup.
func NewBuilder(normalizer *Normalizer, maxCount int) *Builder {
	return &Builder{normalizer: normalizer, maxCount: maxCount}
}

// Run returns min(len(items), max) articles matching the relative order of
// the input; only the tail is truncated. The result is never nil so an
// empty feed serializes as an empty JSON array.
func (b *Builder) Run(items []feed.Item) []Article {
	count := min(len(items), b.maxCount)

	articles := make([]Article, 0, count)
	for _, item := range items[:count] {
		articles = append(articles, b.normalizer.Run(item))
	}

	return articles
}
