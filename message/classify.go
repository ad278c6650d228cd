package message

import (
	"regexp"
	"strings"
)

// List markers and link bullet prefixes of the dialect. They are plain
// literal prefixes, matched byte for byte.
const (
	MarkerBullet   = "•"
	MarkerAsterisk = "*"

	PrefixLink     = "Link: "
	PrefixLiveDemo = "Live Demo: "
)

// bulletPrefixes lists the exact two-glyph line starts of a bullet item.
var bulletPrefixes = []string{
	MarkerBullet + " ",
	MarkerAsterisk + " ",
}

// numberedItem matches "<digits>.<one whitespace><at least one char>".
var numberedItem = regexp.MustCompile(`^(\d+)\.\s(.+)`)

// classifyLine turns a single raw line into exactly one Block.
//
// Rules are tried in a fixed order and the first match wins:
//  1. blank line,
//  2. numbered item,
//  3. bullet item, link bullet first,
//  4. paragraph.
func classifyLine(line string, idx int) Block {
	// 1. blank
	if isBlank(line) {
		return Blank{Line: idx}
	}

	// 2. numbered item; the label is the captured digits as written
	if m := numberedItem.FindStringSubmatch(line); m != nil {
		return NumberedItem{
			Line:    idx,
			Label:   m[1],
			Content: tokenize(m[2]),
		}
	}

	// 3. bullets
	if marker, rest, ok := cutBullet(line); ok {
		return classifyBullet(marker, rest, idx)
	}

	// 4. everything else
	return Paragraph{
		Line:    idx,
		Content: tokenize(line),
	}
}

// cutBullet returns the bullet glyph and the remainder after the
// two-glyph prefix, if the line starts with one.
func cutBullet(line string) (marker, rest string, ok bool) {
	for _, p := range bulletPrefixes {
		if rest, ok = strings.CutPrefix(line, p); ok {
			return strings.TrimSuffix(p, " "), rest, true
		}
	}

	return "", "", false
}

// classifyBullet decides between a link bullet and a plain bullet item.
// The url of a link bullet is trimmed and never parsed for inline markup.
func classifyBullet(marker, rest string, idx int) Block {
	kind := LinkKind("")
	url := ""

	if after, ok := strings.CutPrefix(rest, PrefixLink); ok {
		kind, url = LinkKindLink, trimSpace(after)
	} else if after, ok := strings.CutPrefix(rest, PrefixLiveDemo); ok {
		kind, url = LinkKindLiveDemo, trimSpace(after)
	}

	if kind == "" {
		return BulletItem{
			Line:    idx,
			Marker:  marker,
			Content: tokenize(rest),
		}
	}

	return LinkBullet{
		Line:   idx,
		Marker: marker,
		Kind:   kind,
		URL:    url,
		Content: Run{
			TextNode{Value: kind.Label() + ": "},
			LinkNode{Label: url, URL: url},
		},
	}
}
