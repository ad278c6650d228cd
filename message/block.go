package message

import (
	"encoding/json"
	"strings"
)

// BlockType identifies how a single line of a reply was classified.
type BlockType string

const (
	BlockBlank      BlockType = "BLANK"
	BlockNumbered   BlockType = "NUMBERED_ITEM"
	BlockBullet     BlockType = "BULLET_ITEM"
	BlockLinkBullet BlockType = "LINK_BULLET"
	BlockParagraph  BlockType = "PARAGRAPH"
)

// LinkKind is the label of a link bullet, taken from its fixed prefix.
type LinkKind string

const (
	LinkKindLink     LinkKind = "Link"
	LinkKindLiveDemo LinkKind = "LiveDemo"
)

// Label returns the text shown in front of the url, e.g. "Live Demo".
func (k LinkKind) Label() string {
	if k == LinkKindLiveDemo {
		return "Live Demo"
	}

	return string(k)
}

// Block is one classified line of a reply.
type Block interface {
	// BlockType returns the classification of the line.
	BlockType() BlockType

	// SourceLine returns the zero-based index of the line in the message.
	SourceLine() int

	// Inline returns the block's inline content, nil for blank lines.
	Inline() Run
}

// Blank is an empty or whitespace-only line. It renders as vertical spacing.
type Blank struct {
	Line int `json:"line"`
}

func (b Blank) BlockType() BlockType { return BlockBlank }
func (b Blank) SourceLine() int      { return b.Line }
func (b Blank) Inline() Run          { return nil }

func (b Blank) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		Line int       `json:"line"`
	}{BlockBlank, b.Line})
}

// NumberedItem is a "12. text" line. Label is the literal digit run and is
// never renumbered.
type NumberedItem struct {
	Line    int    `json:"line"`
	Label   string `json:"label"`
	Content Run    `json:"content"`
}

func (b NumberedItem) BlockType() BlockType { return BlockNumbered }
func (b NumberedItem) SourceLine() int      { return b.Line }
func (b NumberedItem) Inline() Run          { return b.Content }

func (b NumberedItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    BlockType `json:"type"`
		Line    int       `json:"line"`
		Label   string    `json:"label"`
		Content Run       `json:"content"`
	}{BlockNumbered, b.Line, b.Label, b.Content})
}

// BulletItem is a "• text" or "* text" line. Marker keeps the glyph used.
type BulletItem struct {
	Line    int    `json:"line"`
	Marker  string `json:"marker"`
	Content Run    `json:"content"`
}

func (b BulletItem) BlockType() BlockType { return BlockBullet }
func (b BulletItem) SourceLine() int      { return b.Line }
func (b BulletItem) Inline() Run          { return b.Content }

func (b BulletItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    BlockType `json:"type"`
		Line    int       `json:"line"`
		Marker  string    `json:"marker"`
		Content Run       `json:"content"`
	}{BlockBullet, b.Line, b.Marker, b.Content})
}

// LinkBullet is a bullet whose payload is "Link: <url>" or "Live Demo: <url>".
//
// The url text is not parsed for inline markup. Content holds the kind label
// followed by a single LINK node pointing at URL.
type LinkBullet struct {
	Line    int      `json:"line"`
	Marker  string   `json:"marker"`
	Kind    LinkKind `json:"kind"`
	URL     string   `json:"url"`
	Content Run      `json:"content"`
}

func (b LinkBullet) BlockType() BlockType { return BlockLinkBullet }
func (b LinkBullet) SourceLine() int      { return b.Line }
func (b LinkBullet) Inline() Run          { return b.Content }

func (b LinkBullet) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    BlockType `json:"type"`
		Line    int       `json:"line"`
		Marker  string    `json:"marker"`
		Kind    LinkKind  `json:"kind"`
		URL     string    `json:"url"`
		Content Run       `json:"content"`
	}{BlockLinkBullet, b.Line, b.Marker, b.Kind, b.URL, b.Content})
}

// Paragraph is any non-blank line which is not a list item.
type Paragraph struct {
	Line    int `json:"line"`
	Content Run `json:"content"`
}

func (b Paragraph) BlockType() BlockType { return BlockParagraph }
func (b Paragraph) SourceLine() int      { return b.Line }
func (b Paragraph) Inline() Run          { return b.Content }

func (b Paragraph) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    BlockType `json:"type"`
		Line    int       `json:"line"`
		Content Run       `json:"content"`
	}{BlockParagraph, b.Line, b.Content})
}

// Document is the ordered list of blocks of a single reply, one per line.
// It is built fresh by Format and never mutated afterwards.
type Document []Block

// Text reconstructs the visible text of the document, one line per block.
// List items are normalized: a numbered item is always "<label>. <text>"
// and a bullet "<marker> <text>", whatever whitespace followed the marker.
func (d Document) Text() string {
	lines := make([]string, len(d))

	for i, b := range d {
		switch v := b.(type) {
		case NumberedItem:
			lines[i] = v.Label + ". " + v.Content.DisplayText()
		case BulletItem:
			lines[i] = v.Marker + " " + v.Content.DisplayText()
		case LinkBullet:
			lines[i] = v.Marker + " " + v.Content.DisplayText()
		default:
			lines[i] = b.Inline().DisplayText()
		}
	}

	return strings.Join(lines, "\n")
}
