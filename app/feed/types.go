package feed

// Feed parsing types

// Metadata carries channel-level fields used for the page heading.
type Metadata struct {
	Title       string
	Link        string
	Description string
}

// Item is one raw feed entry. PubDate is the feed's original date string,
// kept verbatim. Content is the full-content field when the feed provides
// one; Description is the short form. Field defaults are applied during
// normalization, not here.
type Item struct {
	Title       string
	Link        string
	PubDate     string
	Description string
	Content     string
}
