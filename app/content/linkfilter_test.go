package content

import (
	"strings"
	"testing"
)

func TestUnwrapper_DecodesTarget(t *testing.T) {
	unwrapper := NewUnwrapper()

	input := `<a href="https://steamcommunity.com/linkfilter/?u=https%3A%2F%2Fexample.com%2Fpatch">notes</a>`
	expected := `<a href="https://example.com/patch">notes</a>`

	if got := unwrapper.Run(input); got != expected {
		t.Errorf("Run() = %q, expected %q", got, expected)
	}
}

func TestUnwrapper_NoMatchPassthrough(t *testing.T) {
	unwrapper := NewUnwrapper()

	input := `<p>No proxied links here: <a href="https://example.com">plain</a></p>`
	if got := unwrapper.Run(input); got != input {
		t.Errorf("Run() modified input without a linkfilter URL: %q", got)
	}
}

func TestUnwrapper_MultipleOccurrences(t *testing.T) {
	unwrapper := NewUnwrapper()

	input := `<a href="https://steamcommunity.com/linkfilter/?u=https%3A%2F%2Fa.example">a</a>` +
		` and <a href='https://steamcommunity.com/linkfilter/?u=https%3A%2F%2Fb.example'>b</a>`

	got := unwrapper.Run(input)

	if strings.Contains(got, LinkfilterPrefix) {
		t.Errorf("Run() left linkfilter prefix in output: %q", got)
	}
	if !strings.Contains(got, "https://a.example") || !strings.Contains(got, "https://b.example") {
		t.Errorf("Run() did not decode all targets: %q", got)
	}
}

func TestUnwrapper_StopsAtDelimiters(t *testing.T) {
	unwrapper := NewUnwrapper()

	// The ampersand ends the captured parameter; everything after it is
	// surrounding markup and must survive.
	input := `<a href="https://steamcommunity.com/linkfilter/?u=https%3A%2F%2Fexample.com&amp;other=1">x</a>`
	got := unwrapper.Run(input)

	expected := `<a href="https://example.com&amp;other=1">x</a>`
	if got != expected {
		t.Errorf("Run() = %q, expected %q", got, expected)
	}
}

func TestUnwrapper_NestedEncodedTarget(t *testing.T) {
	unwrapper := NewUnwrapper()

	// The target decodes to another linkfilter URL; unwrapping continues
	// until no proxy prefix remains.
	input := `<a href="https://steamcommunity.com/linkfilter/?u=` +
		`https%3A%2F%2Fsteamcommunity.com%2Flinkfilter%2F%3Fu%3Dhttps%253A%252F%252Fexample.com">x</a>`

	got := unwrapper.Run(input)

	expected := `<a href="https://example.com">x</a>`
	if got != expected {
		t.Errorf("Run() = %q, expected %q", got, expected)
	}
	if twice := unwrapper.Run(got); twice != got {
		t.Errorf("Run() not idempotent for nested target: %q vs %q", got, twice)
	}
}

func TestUnwrapper_MalformedEncodingFallsBack(t *testing.T) {
	unwrapper := NewUnwrapper()

	// %zz is not valid percent-encoding: the encoded value is kept, the
	// proxy prefix is still dropped.
	input := `<a href="https://steamcommunity.com/linkfilter/?u=https%zzbroken">x</a>`
	got := unwrapper.Run(input)

	if strings.Contains(got, LinkfilterPrefix) {
		t.Errorf("Run() left linkfilter prefix after decode failure: %q", got)
	}
	if !strings.Contains(got, "https%zzbroken") {
		t.Errorf("Run() should keep the encoded value on decode failure, got %q", got)
	}
}

func TestUnwrapper_Idempotent(t *testing.T) {
	unwrapper := NewUnwrapper()

	inputs := []string{
		`<a href="https://steamcommunity.com/linkfilter/?u=https%3A%2F%2Fexample.com">x</a>`,
		`<a href="https://steamcommunity.com/linkfilter/?u=https%zzbroken">x</a>`,
		`<p>nothing to do</p>`,
		``,
	}

	for _, input := range inputs {
		once := unwrapper.Run(input)
		twice := unwrapper.Run(once)
		if once != twice {
			t.Errorf("Run() not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
