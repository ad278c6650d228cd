package message

import (
	"regexp"
	"strings"
)

var (
	// markdownLink matches "[label](url)" with a non-empty label and url.
	markdownLink = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	// plainURL matches a bare http(s) url up to the first whitespace or '*'.
	// The scheme is case-sensitive.
	plainURL = regexp.MustCompile(`https?://[^\s*]+`)

	// boldURL matches a bare url wrapped in bold delimiters and nothing else.
	boldURL = regexp.MustCompile(`\*\*(https?://[^\s*]+)\*\*`)

	// bold matches the shortest "**...**" pair. Pairs never nest.
	bold = regexp.MustCompile(`\*\*(.*?)\*\*`)
)

// tokenize turns the textual payload of a line into inline nodes.
//
// Exactly one strategy runs per payload, in this order:
//  1. markdown links: literal spans around them are only bold-processed,
//     so bare urls next to a markdown link stay plain text; "**<url>**"
//     loses its delimiters,
//  2. bare urls: "**<url>**" is unwrapped first so the url is never
//     emphasized,
//  3. bold only.
//
// If nothing was produced the payload is returned as a single TEXT node.
func tokenize(content string) Run {
	var run Run

	switch {
	case markdownLink.MatchString(content):
		run = splitMarkdownLinks(content)

	case plainURL.MatchString(content):
		run = splitPlainURLs(content)

	default:
		run = appendBold(nil, content)
	}

	if len(run) == 0 {
		return Run{TextNode{Value: content}}
	}

	return run
}

// splitMarkdownLinks emits LINK nodes for every "[label](url)" match, left to
// right, and bold-processes the literal spans between them.
func splitMarkdownLinks(s string) Run {
	var run Run

	last := 0

	for _, m := range markdownLink.FindAllStringSubmatchIndex(s, -1) {
		if m[0] > last {
			run = appendLiteral(run, s[last:m[0]])
		}

		run = append(run, LinkNode{
			Label: s[m[2]:m[3]],
			URL:   s[m[4]:m[5]],
		})

		last = m[1]
	}

	if last < len(s) {
		run = appendLiteral(run, s[last:])
	}

	return run
}

// appendLiteral bold-processes a span next to a markdown link.
// "**https://a.io**" -> "https://a.io", kept as text.
func appendLiteral(run Run, s string) Run {
	return appendBold(run, boldURL.ReplaceAllString(s, "$1"))
}

// splitPlainURLs emits a LINK node for every bare url, with the url as its own
// label, and bold-processes the rest.
func splitPlainURLs(s string) Run {
	var run Run

	// "**https://a.io**" -> "https://a.io"
	s = boldURL.ReplaceAllString(s, "$1")

	last := 0

	for _, m := range plainURL.FindAllStringIndex(s, -1) {
		if m[0] > last {
			run = appendBold(run, s[last:m[0]])
		}

		url := s[m[0]:m[1]]
		run = append(run, LinkNode{Label: url, URL: url})

		last = m[1]
	}

	if last < len(s) {
		run = appendBold(run, s[last:])
	}

	return run
}

// appendBold splits a literal span into TEXT and BOLD nodes and appends them
// to the run. Unpaired delimiters stay in the TEXT nodes as they are.
//
// A pair whose interior starts with a url scheme is not emphasized either:
// it is kept as literal text, delimiters included.
func appendBold(run Run, s string) Run {
	last := 0

	for _, m := range bold.FindAllStringSubmatchIndex(s, -1) {
		inner := s[m[2]:m[3]]

		if hasURLScheme(inner) {
			continue
		}

		if m[0] > last {
			run = append(run, TextNode{Value: s[last:m[0]]})
		}

		run = append(run, BoldNode{Value: inner})

		last = m[1]
	}

	if last < len(s) {
		run = append(run, TextNode{Value: s[last:]})
	}

	return run
}

func hasURLScheme(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
