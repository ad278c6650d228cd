package render

import (
	"strings"
	"unicode"

	"github.com/anirudh-pedro/Aniru-AI/message"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ANSIRenderer renders a Document for a terminal. Colors degrade with the
// terminal's profile; on a non-terminal writer the output is plain text.
type ANSIRenderer struct {
	label  lipgloss.Style
	marker lipgloss.Style
	bold   lipgloss.Style
	link   lipgloss.Style
	url    lipgloss.Style
}

// NewANSIRenderer builds the styles against the given lipgloss renderer.
func NewANSIRenderer(r *lipgloss.Renderer) *ANSIRenderer {
	return &ANSIRenderer{
		label:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		marker: r.NewStyle().Foreground(lipgloss.Color("14")),
		bold:   r.NewStyle().Bold(true),
		link:   r.NewStyle().Underline(true).Foreground(lipgloss.Color("12")),
		url:    r.NewStyle().Faint(true),
	}
}

// Render returns one terminal line per block.
func (r *ANSIRenderer) Render(doc message.Document) string {
	lines := make([]string, len(doc))

	for i, block := range doc {
		switch v := block.(type) {
		case message.Blank:
			lines[i] = ""
		case message.NumberedItem:
			lines[i] = r.label.Render(sanitizeTerminal(v.Label)+".") + " " + r.run(v.Content)
		case message.BulletItem:
			lines[i] = "  " + r.marker.Render("•") + " " + r.run(v.Content)
		case message.LinkBullet:
			lines[i] = "  " + r.marker.Render("•") + " " + r.run(v.Content)
		default:
			lines[i] = r.run(block.Inline())
		}
	}

	return strings.Join(lines, "\n")
}

func (r *ANSIRenderer) run(run message.Run) string {
	var b strings.Builder

	for _, n := range run {
		switch v := n.(type) {
		case message.BoldNode:
			b.WriteString(r.bold.Render(sanitizeTerminal(v.Value)))
		case message.LinkNode:
			b.WriteString(r.link.Render(sanitizeTerminal(v.Label)))
			// terminals can't hide the target behind the label
			if v.Label != v.URL {
				b.WriteString(" " + r.url.Render("("+sanitizeTerminal(v.URL)+")"))
			}
		default:
			b.WriteString(sanitizeTerminal(n.DisplayText()))
		}
	}

	return b.String()
}

// sanitizeTerminal removes escape sequences and control characters from
// literal reply text, so only our own styling reaches the terminal.
// Tabs become spaces.
func sanitizeTerminal(s string) string {
	s = ansi.Strip(strings.ReplaceAll(s, "\t", " "))

	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
