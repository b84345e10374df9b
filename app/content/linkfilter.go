package content

import (
	"net/url"
	"strings"
)

// LinkfilterPrefix is the Steam outbound-link proxy. The real destination
// rides percent-encoded in the "u" query parameter.
const LinkfilterPrefix = "https://steamcommunity.com/linkfilter/?u="

type Unwrapper struct{}

func NewUnwrapper() *Unwrapper {
	return &Unwrapper{}
}

// Run replaces every linkfilter URL embedded in the HTML fragment with its
// decoded target. The encoded parameter ends at the first quote, ampersand
// or apostrophe, since those delimit it inside surrounding markup. When
// percent-decoding fails the encoded value is substituted as-is: a
// shortened link beats leaving the proxy URL in place. A target can itself
// decode to another proxied URL, so passes repeat until the output is
// stable; that makes Run idempotent. Every pass strips at least one
// occurrence of the prefix, so the loop terminates.
func (u *Unwrapper) Run(html string) string {
	for {
		unwrapped := u.unwrapPass(html)
		if unwrapped == html {
			return unwrapped
		}
		html = unwrapped
	}
}

func (u *Unwrapper) unwrapPass(html string) string {
	if !strings.Contains(html, LinkfilterPrefix) {
		return html
	}

	var b strings.Builder
	b.Grow(len(html))

	for {
		i := strings.Index(html, LinkfilterPrefix)
		if i < 0 {
			b.WriteString(html)
			break
		}

		b.WriteString(html[:i])
		rest := html[i+len(LinkfilterPrefix):]

		end := strings.IndexAny(rest, `"&'`)
		if end < 0 {
			end = len(rest)
		}

		target := rest[:end]
		if decoded, err := url.QueryUnescape(target); err == nil {
			b.WriteString(decoded)
		} else {
			b.WriteString(target)
		}

		html = rest[end:]
	}

	return b.String()
}
