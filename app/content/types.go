package content

// Article is the canonical record produced for each feed item. HTML is a
// sanitized fragment safe for direct embedding; Title, URL and Date are
// plain strings and must be escaped at render time.
type Article struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Date  string `json:"date"`
	HTML  string `json:"html"`
}
