package content

import (
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer applies the allow-list policy to untrusted feed HTML. The
// filtering engine is bluemonday, which guarantees the baseline regardless
// of the configured lists: script elements, inline event handlers and
// javascript:/data: URL schemes never survive.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer(policy *Policy) *Sanitizer {
	bm := bluemonday.NewPolicy()
	bm.AllowElements(policy.Tags...)
	bm.AllowAttrs(policy.Attrs...).Globally()

	// Restricts href/src to http, https, mailto and relative URLs, and
	// requires them to parse. Entity-encoded javascript: URLs fail here.
	bm.AllowStandardURLs()

	return &Sanitizer{policy: bm}
}

// Run returns the fragment with every element outside the allowed tag set
// and every attribute outside the allowed attribute set removed. Text
// inside a disallowed element is preserved; only the markup is dropped.
// Script and style contents are the exception and are discarded entirely.
func (s *Sanitizer) Run(html string) string {
	return s.policy.Sanitize(html)
}
