// Package message parses assistant replies written in the small chat reply
// dialect (numbered and bullet lists, link bullets, markdown and bare links,
// bold) into a Document which a display layer can render safely.
//
// The package is a pure transform: no I/O, no shared state, safe for
// concurrent use. Parsing never fails; input which does not match any
// construct degrades to plain text.
package message

// Format parses a single reply into a Document with one block per line.
//
// Every line is classified on its own, in the order it appears. Consecutive
// list items are not grouped and numbered labels are kept as written.
func Format(text string) Document {
	lines := splitLines(text)

	doc := make(Document, len(lines))

	for i, line := range lines {
		doc[i] = classifyLine(line, i)
	}

	return doc
}
