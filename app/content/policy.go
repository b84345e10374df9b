package content

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Policy is the sanitization allow-list: everything outside it is dropped.
type Policy struct {
	Tags  []string `yaml:"tags"`
	Attrs []string `yaml:"attrs"`
}

func DefaultPolicy() *Policy {
	return &Policy{
		Tags: []string{
			"p", "b", "strong", "i", "em",
			"ul", "ol", "li",
			"h2", "h3",
			"img", "a", "hr", "code", "blockquote",
			"span", "div", "br",
		},
		Attrs: []string{"src", "href", "target", "rel", "class", "alt"},
	}
}

// LoadPolicy reads an allow-list override from a YAML file. An empty path
// yields the built-in defaults; a list omitted from the file keeps its
// default as well.
func LoadPolicy(path string) (*Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}

	var override Policy
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}

	if len(override.Tags) > 0 {
		policy.Tags = override.Tags
	}
	if len(override.Attrs) > 0 {
		policy.Attrs = override.Attrs
	}

	if err := policy.validate(); err != nil {
		return nil, fmt.Errorf("invalid policy %s: %w", path, err)
	}

	return policy, nil
}

func (p *Policy) validate() error {
	for i, tag := range p.Tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("empty tag at index %d", i)
		}
		if strings.ContainsAny(tag, "<>/ ") {
			return fmt.Errorf("invalid tag at index %d: %q (bare names only)", i, tag)
		}
	}
	for i, attr := range p.Attrs {
		if strings.TrimSpace(attr) == "" {
			return fmt.Errorf("empty attribute at index %d", i)
		}
		if strings.ContainsAny(attr, "<>=\"' ") {
			return fmt.Errorf("invalid attribute at index %d: %q (bare names only)", i, attr)
		}
	}
	return nil
}
