package textile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBlock(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		want         Block
		wantConsumed int
	}{
		{
			name: "Heading with bold",
			args: []string{"h1. *Textile markup language*"},
			want: &Heading{
				Level:    1,
				Elements: []Inline{&Bold{Elements: []Inline{&Text{Text: "Textile markup language"}}, Tag: Strong}},
			},
			wantConsumed: 1,
		},
		{
			name: "Heading with attributes",
			args: []string{"h2(title#top). Title", "", "next"},
			want: &Heading{
				Attrs:    Attributes{Class{Names: []string{"title"}}, ID{Value: "top"}},
				Level:    2,
				Elements: []Inline{&Text{Text: "Title"}},
			},
			wantConsumed: 2,
		},
		{
			name: "Heading level out of range is a paragraph",
			args: []string{"h7. Not a heading"},
			want: &Paragraph{
				Elements: []Inline{&Text{Text: "h7. Not a heading"}},
			},
			wantConsumed: 1,
		},
		{
			name: "Paragraph with marker and break",
			args: []string{"p. Paragraph", "with text"},
			want: &Paragraph{
				ExplicitMarker: true,
				Elements:       []Inline{&Text{Text: "Paragraph"}, &Break{}, &Text{Text: "with text"}},
			},
			wantConsumed: 2,
		},
		{
			name: "Paragraph without marker ends at a blank line",
			args: []string{"Plain", "", "Next"},
			want: &Paragraph{
				Elements: []Inline{&Text{Text: "Plain"}},
			},
			wantConsumed: 2,
		},
		{
			name: "Paragraph alignment",
			args: []string{"p<>. Justified"},
			want: &Paragraph{
				Attrs:          Attributes{Style{Props: []StyleProp{{Key: "text-align", Value: "justify"}}}},
				ExplicitMarker: true,
				Elements:       []Inline{&Text{Text: "Justified"}},
			},
			wantConsumed: 1,
		},
		{
			name: "Paragraph padding",
			args: []string{"p((. Indented"},
			want: &Paragraph{
				Attrs:          Attributes{Style{Props: []StyleProp{{Key: "padding-left", Value: "2em"}}}},
				ExplicitMarker: true,
				Elements:       []Inline{&Text{Text: "Indented"}},
			},
			wantConsumed: 1,
		},
		{
			name: "Markers are anchored",
			args: []string{"This bq. is not a quote"},
			want: &Paragraph{
				Elements: []Inline{&Text{Text: "This bq. is not a quote"}},
			},
			wantConsumed: 1,
		},
		{
			name:         "Leading blank lines",
			args:         []string{"", "  ", "h3. Third"},
			want:         &Heading{Level: 3, Elements: []Inline{&Text{Text: "Third"}}},
			wantConsumed: 3,
		},
		{
			name:         "Only blank lines",
			args:         []string{"", " ", ""},
			want:         nil,
			wantConsumed: 3,
		},
		{
			name:         "Code block",
			args:         []string{"bc. code *here*", "more", "", "after"},
			want:         &CodeBlock{Code: "code *here*\nmore"},
			wantConsumed: 3,
		},
		{
			name:         "Code block in multi-line mode",
			args:         []string{"bc.. a", "", "b", "", "p. next"},
			want:         &CodeBlock{Code: "a\n\nb"},
			wantConsumed: 4,
		},
		{
			name:         "Code block with language",
			args:         []string{"bc(go). x := 1"},
			want:         &CodeBlock{Attrs: Attributes{Class{Names: []string{"go"}}}, Code: "x := 1"},
			wantConsumed: 1,
		},
		{
			name:         "Code block with the code in the next line",
			args:         []string{"bc.", "x := 1"},
			want:         &CodeBlock{Code: "x := 1"},
			wantConsumed: 2,
		},
		{
			name:         "Comment in multi-line mode",
			args:         []string{"###.. Comment block", "", "in multiline mode", "", "p. Paragraph"},
			want:         &Comment{Lines: []string{"Comment block", "", "in multiline mode"}},
			wantConsumed: 4,
		},
		{
			name:         "Multi-line mode continues after a blank line with plain text",
			args:         []string{"pre.. one", "", "two", "", "h1. Title"},
			want:         &Pre{Lines: []string{"one", "", "two"}},
			wantConsumed: 4,
		},
		{
			name:         "No textile",
			args:         []string{"notextile. <div>*raw*</div>"},
			want:         &NoTextileBlock{Lines: []string{"<div>*raw*</div>"}},
			wantConsumed: 1,
		},
		{
			name:         "Pre",
			args:         []string{"pre. a  *b*"},
			want:         &Pre{Lines: []string{"a  *b*"}},
			wantConsumed: 1,
		},
		{
			name: "Quotation",
			args: []string{"bq. quoted *text*"},
			want: &BlockQuotation{
				Blocks: []Block{&Paragraph{
					Elements: []Inline{&Text{Text: "quoted "}, &Bold{Elements: []Inline{&Text{Text: "text"}}, Tag: Strong}},
				}},
			},
			wantConsumed: 1,
		},
		{
			name: "Quotation with attributes and cite",
			args: []string{"bq(fancy).:http://example.com Quote"},
			want: &BlockQuotation{
				Attrs: Attributes{Class{Names: []string{"fancy"}}},
				Cite:  "http://example.com",
				Blocks: []Block{&Paragraph{
					Attrs:    Attributes{Class{Names: []string{"fancy"}}},
					Elements: []Inline{&Text{Text: "Quote"}},
				}},
			},
			wantConsumed: 1,
		},
		{
			name: "Quotation in multi-line mode",
			args: []string{"bq(q).. First", "", "Second", "", "p. after"},
			want: &BlockQuotation{
				Attrs: Attributes{Class{Names: []string{"q"}}},
				Blocks: []Block{
					&Paragraph{Attrs: Attributes{Class{Names: []string{"q"}}}, Elements: []Inline{&Text{Text: "First"}}},
					&Paragraph{Attrs: Attributes{Class{Names: []string{"q"}}}, Elements: []Inline{&Text{Text: "Second"}}},
				},
			},
			wantConsumed: 4,
		},
		{
			name: "List",
			args: []string{"* one", "* two"},
			want: &UnorderedList{Elements: []ListElement{
				&ListItem{Elements: []Inline{&Text{Text: "one"}}},
				&ListItem{Elements: []Inline{&Text{Text: "two"}}},
			}},
			wantConsumed: 2,
		},
		{
			name: "Bold at the start of a paragraph is not a list",
			args: []string{"*bold* text"},
			want: &Paragraph{
				Elements: []Inline{&Bold{Elements: []Inline{&Text{Text: "bold"}}, Tag: Strong}, &Text{Text: " text"}},
			},
			wantConsumed: 1,
		},
	}
	p := NewParser(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, consumed := p.parseBlock(tt.args, 0)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantConsumed, consumed)
		})
	}
}

func TestParseBlockNestingLimit(t *testing.T) {
	p := NewParser(nil)
	p.MaxNesting = 2

	got, consumed := p.parseBlock([]string{"h1. Title"}, 3)
	assert.Equal(t, &Paragraph{Elements: []Inline{&Text{Text: "h1. Title"}}}, got)
	assert.Equal(t, 1, consumed)
}
