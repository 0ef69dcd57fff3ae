package textile

import (
	"io"
	"strconv"
	"strings"
)

// Dump writes the parse tree of the document to w, one node per line, indented by depth.
//
//	Heading level=1
//	  Bold tag=strong
//	    Text "Textile markup language"
func Dump(w io.Writer, doc *Document) error {
	br := &ByteRenderer{}
	for _, block := range doc.Blocks {
		dumpBlock(br, block, 0)
	}
	_, err := w.Write(br.Bytes())
	return err
}

func dumpBlock(br *ByteRenderer, block Block, depth int) {
	br.Render(indent(2*depth), block.Kind().String())

	switch b := block.(type) {
	case *Heading:
		br.Render(" level=", b.Level)
		dumpAttributes(br, b.Attrs)
		br.Renderln()
		dumpInlines(br, b.Elements, depth+1)
	case *Paragraph:
		if b.ExplicitMarker {
			br.Render(" explicit")
		}
		dumpAttributes(br, b.Attrs)
		br.Renderln()
		dumpInlines(br, b.Elements, depth+1)
	case *BlockQuotation:
		if len(b.Cite) > 0 {
			br.Render(" cite=", strconv.Quote(b.Cite))
		}
		dumpAttributes(br, b.Attrs)
		br.Renderln()
		for _, child := range b.Blocks {
			dumpBlock(br, child, depth+1)
		}
	case *CodeBlock:
		dumpAttributes(br, b.Attrs)
		br.Renderln(" ", strconv.Quote(b.Code))
	case *Comment:
		br.Renderln(" ", strconv.Quote(strings.Join(b.Lines, "\n")))
	case *NoTextileBlock:
		br.Renderln(" ", strconv.Quote(strings.Join(b.Lines, "\n")))
	case *Pre:
		dumpAttributes(br, b.Attrs)
		br.Renderln(" ", strconv.Quote(strings.Join(b.Lines, "\n")))
	case *OrderedList:
		br.Render(" level=", b.Level)
		if b.Start != 0 {
			br.Render(" start=", b.Start)
		}
		dumpAttributes(br, b.Attrs)
		br.Renderln()
		dumpListElements(br, b.Elements, depth+1)
	case *UnorderedList:
		br.Render(" level=", b.Level)
		dumpAttributes(br, b.Attrs)
		br.Renderln()
		dumpListElements(br, b.Elements, depth+1)
	default:
		br.Renderln()
	}
}

func dumpListElements(br *ByteRenderer, elements []ListElement, depth int) {
	for _, element := range elements {
		switch e := element.(type) {
		case *ListItem:
			br.Render(indent(2*depth), "Item")
			dumpAttributes(br, e.Attrs)
			br.Renderln()
			dumpInlines(br, e.Elements, depth+1)
		case *SubList:
			dumpBlock(br, e.List, depth)
		}
	}
}

func dumpInlines(br *ByteRenderer, elements []Inline, depth int) {
	for _, element := range elements {
		br.Render(indent(2*depth), element.Kind().String())

		switch e := element.(type) {
		case *Text:
			br.Render(" ", strconv.Quote(e.Text))
		case *Code:
			br.Render(" ", strconv.Quote(e.Code))
		case *Bold:
			if e.Tag == PlainBold {
				br.Render(" tag=b")
			} else {
				br.Render(" tag=strong")
			}
			dumpAttributes(br, e.Attrs)
		case *Italic:
			if e.Tag == PlainItalic {
				br.Render(" tag=i")
			} else {
				br.Render(" tag=em")
			}
			dumpAttributes(br, e.Attrs)
		case *Abbreviation:
			br.Render(" ", e.Abbr, " ", strconv.Quote(e.Transcript))
		case *Link:
			br.Render(" href=", strconv.Quote(e.Href))
			if len(e.Title) > 0 {
				br.Render(" title=", strconv.Quote(e.Title))
			}
			dumpAttributes(br, e.Attrs)
		case *Image:
			br.Render(" src=", strconv.Quote(e.Src))
			if len(e.Alt) > 0 {
				br.Render(" alt=", strconv.Quote(e.Alt))
			}
			if len(e.Href) > 0 {
				br.Render(" href=", strconv.Quote(e.Href))
			}
			dumpAttributes(br, e.Attrs)
		case *Strikethrough:
			dumpAttributes(br, e.Attrs)
		case *Underlined:
			dumpAttributes(br, e.Attrs)
		case *Subscript:
			dumpAttributes(br, e.Attrs)
		case *Superscript:
			dumpAttributes(br, e.Attrs)
		case *Span:
			dumpAttributes(br, e.Attrs)
		case *Citation:
			dumpAttributes(br, e.Attrs)
		}
		br.Renderln()

		dumpInlines(br, children(element), depth+1)
	}
}

// dumpAttributes writes the attributes in the same form as the HTML renderer.
func dumpAttributes(br *ByteRenderer, attrs Attributes) {
	if len(attrs) == 0 {
		return
	}
	r := &Renderer{log: nopLogger}
	r.renderAttributes(br, attrs)
}
