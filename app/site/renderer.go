package site

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/JaydeCohenDev/folklore-hunter-news/app/content"
)

//go:embed style.css
var stylesheet string

// clientScript fetches the JSON artifact from the same directory, bypassing
// caches, and renders it with the generated panel literal. The escapers
// mirror content.EscapeText and content.EscapeAttr so both delivery modes
// escape identically.
const clientScript = `<script>
const esc = s => String(s ?? "").replace(/&/g, "&amp;").replace(/</g, "&lt;").replace(/>/g, "&gt;");
const escAttr = s => String(s ?? "").replace(/"/g, "&quot;");

async function loadNews() {
  const container = document.getElementById("articles");
  try {
    const res = await fetch("news.json", { cache: "no-store" });
    if (!res.ok) throw new Error("HTTP " + res.status);
    const articles = await res.json();
    container.innerHTML = articles.map((a, i) => %s).join("");
  } catch (err) {
    container.innerHTML = '<p class="load-error">Failed to load news: ' + esc(err.message) + "</p>";
  }
}

loadNews();
</script>
`

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RunJSON serializes the article set as a pretty-printed JSON array. An
// empty set serializes as [], not null.
func (r *Renderer) RunJSON(articles []content.Article) ([]byte, error) {
	if articles == nil {
		articles = []content.Article{}
	}

	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize articles: %w", err)
	}

	return append(data, '\n'), nil
}

// RunEmbed renders the self-contained document: inlined stylesheet, every
// panel pre-rendered, no script anywhere. Safe for script-restricted
// embedded browsers.
func (r *Renderer) RunEmbed(title string, articles []content.Article) []byte {
	var buf bytes.Buffer

	r.writePageOpen(&buf, title)
	buf.WriteString("<div class=\"articles\" id=\"articles\">\n")
	for i, article := range articles {
		buf.WriteString(renderPanel(i, article))
	}
	buf.WriteString("</div>\n")
	r.writePageClose(&buf, "")

	return buf.Bytes()
}

// RunIndex renders the same visual shell with an empty content region plus
// the client script that fills it from news.json after load.
func (r *Renderer) RunIndex(title string) []byte {
	var buf bytes.Buffer

	r.writePageOpen(&buf, title)
	buf.WriteString("<div class=\"articles\" id=\"articles\">\n")
	buf.WriteString("</div>\n")
	r.writePageClose(&buf, fmt.Sprintf(clientScript, "`"+panelLiteral()+"`"))

	return buf.Bytes()
}

func (r *Renderer) writePageOpen(buf *bytes.Buffer, title string) {
	escaped := content.EscapeText(title)

	buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	buf.WriteString("<meta charset=\"utf-8\">\n")
	buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	buf.WriteString("<title>" + escaped + "</title>\n")
	buf.WriteString("<style>\n" + stylesheet + "</style>\n")
	buf.WriteString("</head>\n<body>\n")
	buf.WriteString("<h1>" + escaped + "</h1>\n")
}

func (r *Renderer) writePageClose(buf *bytes.Buffer, script string) {
	if script != "" {
		buf.WriteString(script)
	}
	buf.WriteString("</body>\n</html>\n")
}
