package message

import (
	"encoding/json"
	"strings"
)

// NodeType identifies the kind of inline node, e.g. "TEXT", "BOLD", "LINK".
type NodeType string

const (
	NodeText NodeType = "TEXT"
	NodeBold NodeType = "BOLD"
	NodeLink NodeType = "LINK"
)

// Tag defines the literal delimiters of the reply dialect.
type Tag string

const (
	TagBold          Tag = "**"
	TagLinkTextStart Tag = "["
	TagLinkTextEnd   Tag = "]"
	TagLinkURLStart  Tag = "("
	TagLinkURLEnd    Tag = ")"
)

// Node is a typed fragment of a block's inline content.
//
// Nodes are leaves: the dialect has no nesting, so there is no
// Children/Append pair like a general markdown AST would have.
type Node interface {
	// NodeType returns the node's type, e.g. "BOLD", "LINK", "TEXT".
	NodeType() NodeType

	// DisplayText returns the visible text of the node, without any
	// dialect syntax. For LINK nodes this is the label.
	DisplayText() string

	// Markdown returns a canonical serialization of the node in the
	// reply dialect.
	//
	// For example:
	//   - BOLD("hi") → "**hi**"
	//   - LINK("site", "https://a.io") → "[site](https://a.io)"
	//   - TEXT("hi") → "hi"
	Markdown() string
}

// TextNode is literal text. Its value must be escaped by whatever displays it.
type TextNode struct {
	Value string `json:"value"`
}

func (n TextNode) NodeType() NodeType  { return NodeText }
func (n TextNode) DisplayText() string { return n.Value }
func (n TextNode) Markdown() string    { return n.Value }

func (n TextNode) MarshalJSON() ([]byte, error) {
	return marshalTyped(NodeText, n.Value)
}

// BoldNode is emphasized literal text. The value is never parsed further.
type BoldNode struct {
	Value string `json:"value"`
}

func (n BoldNode) NodeType() NodeType  { return NodeBold }
func (n BoldNode) DisplayText() string { return n.Value }

func (n BoldNode) Markdown() string {
	return string(TagBold) + n.Value + string(TagBold)
}

func (n BoldNode) MarshalJSON() ([]byte, error) {
	return marshalTyped(NodeBold, n.Value)
}

// LinkNode is a clickable reference. Label is what the user sees, URL is
// the target, passed through verbatim: no decoding, no validation.
type LinkNode struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

func (n LinkNode) NodeType() NodeType  { return NodeLink }
func (n LinkNode) DisplayText() string { return n.Label }

// Markdown returns the bare url for auto-detected links (label == url)
// and the bracketed form otherwise.
func (n LinkNode) Markdown() string {
	if n.Label == n.URL {
		return n.URL
	}

	return string(TagLinkTextStart) + n.Label + string(TagLinkTextEnd) +
		string(TagLinkURLStart) + n.URL + string(TagLinkURLEnd)
}

func (n LinkNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  NodeType `json:"type"`
		Label string   `json:"label"`
		URL   string   `json:"url"`
	}{NodeLink, n.Label, n.URL})
}

// marshalTyped writes a value node together with its type discriminator.
func marshalTyped(t NodeType, value string) ([]byte, error) {
	return json.Marshal(struct {
		Type  NodeType `json:"type"`
		Value string   `json:"value"`
	}{t, value})
}

// Run is the ordered inline content of a block.
type Run []Node

// DisplayText concatenates the visible text of every node in the run.
func (r Run) DisplayText() string {
	var b strings.Builder

	for _, n := range r {
		b.WriteString(n.DisplayText())
	}

	return b.String()
}

// Markdown concatenates the canonical markdown of every node in the run.
func (r Run) Markdown() string {
	var b strings.Builder

	for _, n := range r {
		b.WriteString(n.Markdown())
	}

	return b.String()
}
