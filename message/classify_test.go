package message

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Block
	}{
		{
			name: "empty",
			line: "",
			want: Blank{},
		},
		{
			name: "spaces_only",
			line: "   ",
			want: Blank{},
		},
		{
			name: "tabs_and_carriage_return",
			line: "\t\r",
			want: Blank{},
		},
		{
			name: "byte_order_mark",
			line: "\uFEFF ",
			want: Blank{},
		},
		{
			name: "numbered_with_bold",
			line: "1. **Bold** item",
			want: NumberedItem{
				Label:   "1",
				Content: Run{BoldNode{Value: "Bold"}, TextNode{Value: " item"}},
			},
		},
		{
			name: "numbered_multi_digit_label_kept",
			line: "12. Twelve",
			want: NumberedItem{
				Label:   "12",
				Content: Run{TextNode{Value: "Twelve"}},
			},
		},
		{
			name: "numbered_tab_separator",
			line: "3.\tTabbed",
			want: NumberedItem{
				Label:   "3",
				Content: Run{TextNode{Value: "Tabbed"}},
			},
		},
		{
			name: "numbered_with_markdown_link",
			line: "2. **FlashChat** - [repo](https://github.com/x/flashchat)",
			want: NumberedItem{
				Label: "2",
				Content: Run{
					BoldNode{Value: "FlashChat"},
					TextNode{Value: " - "},
					LinkNode{Label: "repo", URL: "https://github.com/x/flashchat"},
				},
			},
		},
		{
			name: "digit_dot_without_space_is_paragraph",
			line: "1.no space",
			want: Paragraph{Content: Run{TextNode{Value: "1.no space"}}},
		},
		{
			name: "digit_dot_space_without_content_is_paragraph",
			line: "1. ",
			want: Paragraph{Content: Run{TextNode{Value: "1. "}}},
		},
		{
			name: "numbered_content_starting_with_bullet_marker",
			line: "1. * not nested",
			want: NumberedItem{
				Label:   "1",
				Content: Run{TextNode{Value: "* not nested"}},
			},
		},
		{
			name: "link_bullet_trimmed",
			line: "• Link: https://example.com/x ",
			want: LinkBullet{
				Marker: "•",
				Kind:   LinkKindLink,
				URL:    "https://example.com/x",
				Content: Run{
					TextNode{Value: "Link: "},
					LinkNode{Label: "https://example.com/x", URL: "https://example.com/x"},
				},
			},
		},
		{
			name: "live_demo_bullet",
			line: "* Live Demo: http://demo.site",
			want: LinkBullet{
				Marker: "*",
				Kind:   LinkKindLiveDemo,
				URL:    "http://demo.site",
				Content: Run{
					TextNode{Value: "Live Demo: "},
					LinkNode{Label: "http://demo.site", URL: "http://demo.site"},
				},
			},
		},
		{
			name: "link_bullet_url_not_parsed",
			line: "• Link: **https://a.io** [x](y)",
			want: LinkBullet{
				Marker: "•",
				Kind:   LinkKindLink,
				URL:    "**https://a.io** [x](y)",
				Content: Run{
					TextNode{Value: "Link: "},
					LinkNode{Label: "**https://a.io** [x](y)", URL: "**https://a.io** [x](y)"},
				},
			},
		},
		{
			name: "link_bullet_empty_url",
			line: "* Link: ",
			want: LinkBullet{
				Marker: "*",
				Kind:   LinkKindLink,
				URL:    "",
				Content: Run{
					TextNode{Value: "Link: "},
					LinkNode{},
				},
			},
		},
		{
			name: "link_prefix_without_space_is_plain_bullet",
			line: "• Link:https://x.io",
			want: BulletItem{
				Marker: "•",
				Content: Run{
					TextNode{Value: "Link:"},
					LinkNode{Label: "https://x.io", URL: "https://x.io"},
				},
			},
		},
		{
			name: "bullet_with_bold",
			line: "* plain **bold**",
			want: BulletItem{
				Marker:  "*",
				Content: Run{TextNode{Value: "plain "}, BoldNode{Value: "bold"}},
			},
		},
		{
			name: "bullet_double_space_keeps_leading_space",
			line: "•  Link: x",
			want: BulletItem{
				Marker:  "•",
				Content: Run{TextNode{Value: " Link: x"}},
			},
		},
		{
			name: "bullet_with_empty_payload",
			line: "• ",
			want: BulletItem{
				Marker:  "•",
				Content: Run{TextNode{Value: ""}},
			},
		},
		{
			name: "asterisk_without_space_is_paragraph",
			line: "*not a bullet",
			want: Paragraph{Content: Run{TextNode{Value: "*not a bullet"}}},
		},
		{
			name: "dash_is_paragraph",
			line: "- dash",
			want: Paragraph{Content: Run{TextNode{Value: "- dash"}}},
		},
		{
			name: "bold_line_starting_with_asterisks_is_paragraph",
			line: "**Skills** overview",
			want: Paragraph{Content: Run{BoldNode{Value: "Skills"}, TextNode{Value: " overview"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyLine(tt.line, 0)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("classifyLine(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestClassifyLine_KeepsSourceLine(t *testing.T) {
	lines := []string{"", "1. a", "• b", "* Link: c", "d"}

	for i, line := range lines {
		b := classifyLine(line, i)
		require.Equal(t, i, b.SourceLine(), "line %q", line)
	}
}

func TestClassifyLine_Priority(t *testing.T) {
	// numbered beats bullet beats paragraph
	require.Equal(t, BlockNumbered, classifyLine("7. • Link: https://a.io", 0).BlockType())
	require.Equal(t, BlockLinkBullet, classifyLine("* Link: 1. x", 0).BlockType())
	require.Equal(t, BlockBullet, classifyLine("* [a](b)", 0).BlockType())
	require.Equal(t, BlockParagraph, classifyLine("[a](b)", 0).BlockType())
	require.Equal(t, BlockBlank, classifyLine(" \t ", 0).BlockType())
}

func TestLinkKindLabel(t *testing.T) {
	require.Equal(t, "Link", LinkKindLink.Label())
	require.Equal(t, "Live Demo", LinkKindLiveDemo.Label())
}
