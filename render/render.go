// Package render turns a parsed reply into something a display can show.
//
// It is the display boundary of the reply dialect: literal content is
// escaped here and interactive links are limited to http and https.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/anirudh-pedro/Aniru-AI/message"
	"github.com/charmbracelet/lipgloss"
)

// Format names an output representation of a Document.
type Format string

const (
	FormatJSON Format = "json"
	FormatHTML Format = "html"
	FormatText Format = "text"
	FormatANSI Format = "ansi"
)

var ErrUnknownFormat = errors.New("unknown render format")

// ParseFormat validates a format name. An empty name means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatHTML, FormatText, FormatANSI:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Options configures an Engine.
type Options struct {
	// TargetBlank adds target="_blank" to rendered links.
	TargetBlank bool

	// Terminal is where ANSI output goes; it decides the color profile.
	// nil means lipgloss' default renderer (stdout).
	Terminal io.Writer
}

// Engine renders documents in every supported format.
// It holds no per-call state and is safe for concurrent use.
type Engine struct {
	html *HTMLRenderer
	ansi *ANSIRenderer
}

// NewEngine creates new *Engine with the provided options.
func NewEngine(opts Options) *Engine {
	r := lipgloss.DefaultRenderer()
	if opts.Terminal != nil {
		r = lipgloss.NewRenderer(opts.Terminal)
	}

	return &Engine{
		html: NewHTMLRenderer(opts.TargetBlank),
		ansi: NewANSIRenderer(r),
	}
}

// Render renders the document in the given format.
func (e *Engine) Render(f Format, doc message.Document) (string, error) {
	switch f {
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", fmt.Errorf("cannot marshal document: %w", err)
		}
		return string(out), nil
	case FormatHTML:
		return e.html.Render(doc), nil
	case FormatText:
		return Text(doc), nil
	case FormatANSI:
		return e.ansi.Render(doc), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// HTML renders the document as a sanitized HTML fragment.
func (e *Engine) HTML(doc message.Document) string {
	return e.html.Render(doc)
}

// Text renders the visible text of the document without any markup.
func Text(doc message.Document) string {
	return doc.Text()
}
