package render

import (
	"html"
	"net/url"
	"strings"

	"github.com/anirudh-pedro/Aniru-AI/message"
	"github.com/microcosm-cc/bluemonday"
)

// CSS classes of the generated fragment. Styling is up to the page.
const (
	ClassParagraph  = "reply-paragraph"
	ClassNumbered   = "reply-numbered"
	ClassBullet     = "reply-bullet"
	ClassLinkBullet = "reply-link-bullet"
	ClassLabel      = "reply-label"
	ClassMarker     = "reply-marker"
	ClassContent    = "reply-content"
	ClassLink       = "reply-link"
)

// HTMLRenderer renders a Document as an HTML fragment.
//
// Text is escaped while the fragment is built, and the result is passed
// through a bluemonday policy which only knows the elements the renderer
// emits and only lets http and https links through.
type HTMLRenderer struct {
	policy *bluemonday.Policy
}

// NewHTMLRenderer creates new *HTMLRenderer. With targetBlank set, links get
// target="_blank" and rel="noopener".
func NewHTMLRenderer(targetBlank bool) *HTMLRenderer {
	p := bluemonday.NewPolicy()

	p.AllowElements("div", "span", "strong", "br")
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("div", "span", "a")
	p.AllowAttrs("href").OnElements("a")

	p.RequireParseableURLs(true)
	p.AllowURLSchemes("http", "https")
	p.AllowRelativeURLs(false)
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(targetBlank)

	return &HTMLRenderer{policy: p}
}

// Render returns the sanitized fragment, one element per block.
func (r *HTMLRenderer) Render(doc message.Document) string {
	var b strings.Builder

	for i, block := range doc {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeBlock(&b, block)
	}

	return r.policy.Sanitize(b.String())
}

func writeBlock(b *strings.Builder, block message.Block) {
	switch v := block.(type) {
	case message.Blank:
		b.WriteString("<br>")

	case message.NumberedItem:
		openDiv(b, ClassNumbered)
		writeSpan(b, ClassLabel, html.EscapeString(v.Label)+".")
		b.WriteByte(' ')
		openDiv(b, ClassContent)
		writeRun(b, v.Content)
		b.WriteString("</div></div>")

	case message.BulletItem:
		openDiv(b, ClassBullet)
		writeSpan(b, ClassMarker, "•")
		b.WriteByte(' ')
		openDiv(b, ClassContent)
		writeRun(b, v.Content)
		b.WriteString("</div></div>")

	case message.LinkBullet:
		openDiv(b, ClassLinkBullet)
		writeSpan(b, ClassMarker, "•")
		b.WriteByte(' ')
		b.WriteString(`<span class="` + ClassContent + `">`)
		writeRun(b, v.Content)
		b.WriteString("</span></div>")

	default:
		openDiv(b, ClassParagraph)
		writeRun(b, block.Inline())
		b.WriteString("</div>")
	}
}

func writeRun(b *strings.Builder, run message.Run) {
	for _, n := range run {
		switch v := n.(type) {
		case message.BoldNode:
			b.WriteString("<strong>")
			b.WriteString(html.EscapeString(v.Value))
			b.WriteString("</strong>")

		case message.LinkNode:
			// links with any other scheme degrade to their label
			if !isWebURL(v.URL) {
				b.WriteString(html.EscapeString(v.Label))
				continue
			}

			b.WriteString(`<a class="` + ClassLink + `" href="`)
			b.WriteString(html.EscapeString(v.URL))
			b.WriteString(`">`)
			b.WriteString(html.EscapeString(v.Label))
			b.WriteString("</a>")

		default:
			b.WriteString(html.EscapeString(n.DisplayText()))
		}
	}
}

func openDiv(b *strings.Builder, class string) {
	b.WriteString(`<div class="` + class + `">`)
}

// writeSpan writes a span with already escaped content.
func writeSpan(b *strings.Builder, class, escaped string) {
	b.WriteString(`<span class="` + class + `">` + escaped + "</span>")
}

// isWebURL reports whether the url is an absolute http or https url with a host.
func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	scheme := strings.ToLower(u.Scheme)

	return (scheme == "http" || scheme == "https") && u.Host != ""
}
