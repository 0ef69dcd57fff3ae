package textile

import (
	"strconv"
	"strings"
	"sync"

	"github.com/hesusruiz/textile/sliceedit"
	"go.uber.org/zap"
)

// RenderOptions controls the HTML output.
type RenderOptions struct {
	// Compress writes the output without newlines or indentation between elements.
	Compress bool
	// Indent is the number of spaces per nesting level of lists and quotations.
	Indent int
	// Highlight colors code blocks whose class names a language, like "bc(go). ...".
	Highlight bool
	// CodeStyle is the name of the highlighting style.
	CodeStyle string
	// Diagrams renders code blocks with class "d2" as SVG diagrams.
	Diagrams bool
	// EscapeText escapes &, <, > and " in text, code and attribute values.
	// Text is written as is by default.
	EscapeText bool
}

// DefaultRenderOptions returns indented output with two spaces and the "github" code style.
func DefaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Indent:    2,
		CodeStyle: "github",
	}
}

// Renderer writes a Document as HTML. It does not modify the Document and can be used concurrently.
type Renderer struct {
	opts RenderOptions
	log  *zap.SugaredLogger

	diagrams sync.Map // Rendered SVG by hash of the diagram source
}

// NewRenderer returns a Renderer for the options. Nil options are the defaults and a nil
// logger disables logging.
func NewRenderer(opts *RenderOptions, logger *zap.SugaredLogger) *Renderer {
	if opts == nil {
		opts = DefaultRenderOptions()
	}
	if logger == nil {
		logger = nopLogger
	}
	return &Renderer{opts: *opts, log: logger}
}

// Render converts Textile text to HTML with the default options.
func Render(text string) string {
	return RenderWith(text, DefaultRenderOptions())
}

// RenderWith converts Textile text to HTML.
func RenderWith(text string, opts *RenderOptions) string {
	return string(Parse(text).RenderHTML(opts))
}

// RenderHTML renders the document with the given options.
func (doc *Document) RenderHTML(opts *RenderOptions) []byte {
	return NewRenderer(opts, nil).Render(doc)
}

// Render returns the HTML for the blocks of the document, separated by newlines
// unless the output is compressed.
func (r *Renderer) Render(doc *Document) []byte {
	br := &ByteRenderer{}
	r.renderBlocks(br, doc.Blocks)
	return br.Bytes()
}

func (r *Renderer) renderBlocks(br *ByteRenderer, blocks []Block) {
	wrote := false
	for _, block := range blocks {
		if _, ok := block.(*Comment); ok {
			continue
		}
		if wrote {
			r.newline(br)
		}
		r.renderBlock(br, block)
		wrote = true
	}
}

func (r *Renderer) renderBlock(br *ByteRenderer, block Block) {
	switch b := block.(type) {
	case *Heading:
		tag := "h" + strconv.Itoa(b.Level)
		br.Render("<", tag)
		r.renderAttributes(br, b.Attrs)
		br.Render(">")
		r.renderInlines(br, b.Elements)
		br.Render("</", tag, ">")

	case *Paragraph:
		br.Render("<p")
		r.renderAttributes(br, b.Attrs)
		br.Render(">")
		r.renderInlines(br, b.Elements)
		br.Render("</p>")

	case *BlockQuotation:
		r.renderBlockQuotation(br, b)

	case *CodeBlock:
		r.renderCodeBlock(br, b)

	case *Pre:
		br.Render("<pre")
		r.renderAttributes(br, b.Attrs)
		br.Render(">", r.text(strings.Join(b.Lines, "\n")), "</pre>")

	case *NoTextileBlock:
		br.Render(strings.Join(b.Lines, "\n"))

	case *Comment:
		// Comments produce no output

	case *OrderedList:
		openTag := "<ol"
		if b.Start != 0 {
			openTag += ` start="` + strconv.Itoa(b.Start) + `"`
		}
		r.renderList(br, openTag, "</ol>", b.Attrs, b.Level, b.Elements)

	case *UnorderedList:
		r.renderList(br, "<ul", "</ul>", b.Attrs, b.Level, b.Elements)
	}
}

func (r *Renderer) renderBlockQuotation(br *ByteRenderer, q *BlockQuotation) {
	br.Render("<blockquote")
	if len(q.Cite) > 0 {
		br.Render(` cite="`, r.attrValue(q.Cite), `"`)
	}
	r.renderAttributes(br, q.Attrs)
	br.Render(">")

	if r.opts.Compress {
		r.renderBlocks(br, q.Blocks)
		br.Render("</blockquote>")
		return
	}

	inner := &ByteRenderer{}
	r.renderBlocks(inner, q.Blocks)
	br.Render("\n", indentLines(inner.Bytes(), r.opts.Indent), "\n</blockquote>")
}

func (r *Renderer) renderCodeBlock(br *ByteRenderer, cb *CodeBlock) {
	lang := firstClass(cb.Attrs)

	if r.opts.Diagrams && lang == "d2" {
		svg, err := r.diagram(cb.Code)
		if err == nil {
			br.Render(`<figure class="diagram">`, svg, "</figure>")
			return
		}
		r.log.Warnw("diagram not rendered", "error", err)
	}

	br.Render("<pre")
	r.renderAttributes(br, cb.Attrs)
	br.Render("><code>")

	if r.opts.Highlight && len(lang) > 0 {
		colored, err := r.highlight(cb.Code, lang)
		if err == nil {
			br.Render(colored, "</code></pre>")
			return
		}
		r.log.Debugw("code not highlighted", "language", lang, "error", err)
	}

	br.Render(r.text(cb.Code), "</code></pre>")
}

// renderList writes the list and its nested lists. Nested lists are siblings of the items,
// indented by their own level.
func (r *Renderer) renderList(br *ByteRenderer, openTag, closeTag string, attrs Attributes, level int, elements []ListElement) {
	br.Render(r.indent(level), openTag)
	r.renderAttributes(br, attrs)
	br.Render(">")

	for _, element := range elements {
		r.newline(br)
		switch e := element.(type) {
		case *ListItem:
			br.Render(r.indent(level+1), "<li")
			r.renderAttributes(br, e.Attrs)
			br.Render(">")
			r.renderInlines(br, e.Elements)
			br.Render("</li>")
		case *SubList:
			r.renderBlock(br, e.List)
		}
	}

	r.newline(br)
	br.Render(r.indent(level), closeTag)
}

func (r *Renderer) renderInlines(br *ByteRenderer, elements []Inline) {
	for _, element := range elements {
		r.renderInline(br, element)
	}
}

func (r *Renderer) renderInline(br *ByteRenderer, element Inline) {
	switch e := element.(type) {
	case *Text:
		br.Render(r.text(e.Text))
	case *Break:
		br.Render("<br>")
	case *Bold:
		tag := "strong"
		if e.Tag == PlainBold {
			tag = "b"
		}
		r.renderPhrase(br, tag, e.Attrs, e.Elements)
	case *Italic:
		tag := "em"
		if e.Tag == PlainItalic {
			tag = "i"
		}
		r.renderPhrase(br, tag, e.Attrs, e.Elements)
	case *Strikethrough:
		r.renderPhrase(br, "del", e.Attrs, e.Elements)
	case *Underlined:
		r.renderPhrase(br, "ins", e.Attrs, e.Elements)
	case *Subscript:
		r.renderPhrase(br, "sub", e.Attrs, e.Elements)
	case *Superscript:
		r.renderPhrase(br, "sup", e.Attrs, e.Elements)
	case *Span:
		r.renderPhrase(br, "span", e.Attrs, e.Elements)
	case *Citation:
		r.renderPhrase(br, "cite", e.Attrs, e.Elements)
	case *Code:
		br.Render("<code>", r.text(e.Code), "</code>")
	case *Abbreviation:
		br.Render(`<acronym title="`, r.attrValue(e.Transcript), `"><span>`, r.text(e.Abbr), "</span></acronym>")
	case *Link:
		br.Render(`<a href="`, r.attrValue(e.Href), `"`)
		if len(e.Title) > 0 {
			br.Render(` title="`, r.attrValue(e.Title), `"`)
		}
		r.renderAttributes(br, e.Attrs)
		br.Render(">")
		r.renderInlines(br, e.Elements)
		br.Render("</a>")
	case *Image:
		r.renderImage(br, e)
	}
}

func (r *Renderer) renderPhrase(br *ByteRenderer, tag string, attrs Attributes, elements []Inline) {
	br.Render("<", tag)
	r.renderAttributes(br, attrs)
	br.Render(">")
	r.renderInlines(br, elements)
	br.Render("</", tag, ">")
}

func (r *Renderer) renderImage(br *ByteRenderer, img *Image) {
	if len(img.Href) > 0 {
		br.Render(`<a href="`, r.attrValue(img.Href), `">`)
	}
	br.Render(`<img src="`, r.attrValue(img.Src), `"`)
	r.renderAttributes(br, img.Attrs)
	br.Render(` alt="`, r.attrValue(img.Alt), `"`)
	if len(img.Alt) > 0 {
		br.Render(` title="`, r.attrValue(img.Alt), `"`)
	}
	br.Render(">")
	if len(img.Href) > 0 {
		br.Render("</a>")
	}
}

// renderAttributes writes the attributes in the order class, id, lang, style and align.
// All the class names are merged, and for the rest the last one wins.
func (r *Renderer) renderAttributes(br *ByteRenderer, attrs Attributes) {
	if len(attrs) == 0 {
		return
	}

	var classes []string
	var id, lang, align string
	var style Style

	for _, attr := range attrs {
		switch a := attr.(type) {
		case Class:
			classes = append(classes, a.Names...)
		case ID:
			id = a.Value
		case Language:
			lang = a.Code
		case Style:
			for _, prop := range a.Props {
				style.Set(prop.Key, prop.Value)
			}
		case Align:
			align = a.Value
		}
	}

	if len(classes) > 0 {
		br.Render(` class="`, r.attrValue(strings.Join(classes, " ")), `"`)
	}
	if len(id) > 0 {
		br.Render(` id="`, r.attrValue(id), `"`)
	}
	if len(lang) > 0 {
		br.Render(` lang="`, r.attrValue(lang), `"`)
	}
	if len(style.Props) > 0 {
		br.Render(` style="`, r.attrValue(style.String()), `"`)
	}
	if len(align) > 0 {
		br.Render(` align="`, align, `"`)
	}
}

// text returns s escaped when the options ask for it.
func (r *Renderer) text(s string) string {
	if r.opts.EscapeText {
		return sliceedit.EscapeString(s)
	}
	return s
}

func (r *Renderer) attrValue(s string) string {
	return r.text(s)
}

func (r *Renderer) newline(br *ByteRenderer) {
	if !r.opts.Compress {
		br.Render("\n")
	}
}

func (r *Renderer) indent(level int) []byte {
	if r.opts.Compress {
		return nil
	}
	return indent(level * r.opts.Indent)
}

// firstClass returns the first class name in the attributes, or "".
func firstClass(attrs Attributes) string {
	for _, attr := range attrs {
		if c, ok := attr.(Class); ok && len(c.Names) > 0 {
			return c.Names[0]
		}
	}
	return ""
}
