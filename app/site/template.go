package site

import (
	"strconv"
	"strings"

	"github.com/JaydeCohenDev/folklore-hunter-news/app/content"
)

// panelSkeleton is the single source of truth for article markup. The
// embed renderer fills the slots with escaped Go values; the index page's
// client script is generated from the same skeleton with template-literal
// expressions, so both delivery modes emit identical structure. The
// checkbox/label pair gives a script-free accordion, which the Steam
// in-game overlay requires.
const panelSkeleton = `<div class="article">
<input type="checkbox" class="article-toggle" id="article-{{index}}"{{checked}}>
<label class="article-header" for="article-{{index}}">
<span class="article-title">{{title}}</span>
<span class="article-date">{{date}}</span>
</label>
<div class="article-body">
{{html}}
<p class="article-source"><a href="{{url}}" target="_blank" rel="noopener noreferrer">View on Steam</a></p>
</div>
</div>
`

// fillPanel substitutes every slot in a single pass over the skeleton.
// Replaced text is never rescanned, so a field value that happens to
// contain a slot token renders literally.
func fillPanel(slots map[string]string) string {
	pairs := make([]string, 0, len(slots)*2)
	for name, value := range slots {
		pairs = append(pairs, "{{"+name+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(panelSkeleton)
}

// renderPanel produces the embed-side markup for one article. The first
// panel starts open. The html slot is interpolated raw: it is already
// sanitized and escaping it again would corrupt its entities.
func renderPanel(i int, a content.Article) string {
	checked := ""
	if i == 0 {
		checked = " checked"
	}

	return fillPanel(map[string]string{
		"index":   strconv.Itoa(i),
		"checked": checked,
		"title":   content.EscapeText(a.Title),
		"date":    content.EscapeText(a.Date),
		"url":     content.EscapeAttr(content.EscapeText(a.URL)),
		"html":    a.HTML,
	})
}

// panelLiteral is the same skeleton as a JS template-literal body, slot
// for slot. esc and escAttr in the client script mirror EscapeText and
// EscapeAttr.
func panelLiteral() string {
	return fillPanel(map[string]string{
		"index":   "${i}",
		"checked": `${i === 0 ? " checked" : ""}`,
		"title":   "${esc(a.title)}",
		"date":    "${esc(a.date)}",
		"url":     "${escAttr(esc(a.url))}",
		"html":    "${a.html}",
	})
}
