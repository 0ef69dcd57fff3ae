package textile

import "strconv"

// Document is the result of parsing a Textile source: the top-level blocks in source order.
type Document struct {
	Blocks []Block
}

// A BlockKind is the type of a Block.
type BlockKind uint32

const (
	ErrorNode BlockKind = iota
	HeadingNode
	ParagraphNode
	BlockQuotationNode
	CodeBlockNode
	CommentNode
	NoTextileNode
	PreNode
	OrderedListNode
	UnorderedListNode
)

// String returns a string representation of the BlockKind.
func (k BlockKind) String() string {
	switch k {
	case ErrorNode:
		return "Error"
	case HeadingNode:
		return "Heading"
	case ParagraphNode:
		return "Paragraph"
	case BlockQuotationNode:
		return "BlockQuotation"
	case CodeBlockNode:
		return "CodeBlock"
	case CommentNode:
		return "Comment"
	case NoTextileNode:
		return "NoTextileBlock"
	case PreNode:
		return "Pre"
	case OrderedListNode:
		return "OrderedList"
	case UnorderedListNode:
		return "UnorderedList"
	}
	return "Invalid(" + strconv.Itoa(int(k)) + ")"
}

// Block is a structural unit of the document: headings, paragraphs, lists, etc.
type Block interface {
	Kind() BlockKind
}

// Heading is a 'hN.' block. Level is between 1 and 6.
type Heading struct {
	Attrs    Attributes
	Level    int
	Elements []Inline
}

// Paragraph is a 'p.' block or any text that does not start another block.
// ExplicitMarker records whether the 'p.' prefix was present.
type Paragraph struct {
	Attrs          Attributes
	Elements       []Inline
	ExplicitMarker bool
}

// BlockQuotation is a 'bq.' block. Its body is made of paragraphs.
type BlockQuotation struct {
	Attrs  Attributes
	Cite   string
	Blocks []Block
}

// CodeBlock is a 'bc.' block. Code is kept verbatim.
type CodeBlock struct {
	Attrs Attributes
	Code  string
}

// Comment is a '###.' block. It is kept in the tree but never rendered.
type Comment struct {
	Lines []string
}

// NoTextileBlock is a 'notextile.' block, passed through without formatting.
type NoTextileBlock struct {
	Lines []string
}

// Pre is a 'pre.' block of preformatted text.
type Pre struct {
	Attrs Attributes
	Lines []string
}

// OrderedList is a list made of '#' items. Start is the number of the first item,
// or zero when the list was not given one.
type OrderedList struct {
	Attrs    Attributes
	Level    int
	Start    int
	Elements []ListElement
}

// UnorderedList is a list made of '*' items.
type UnorderedList struct {
	Attrs    Attributes
	Level    int
	Elements []ListElement
}

func (*Heading) Kind() BlockKind        { return HeadingNode }
func (*Paragraph) Kind() BlockKind      { return ParagraphNode }
func (*BlockQuotation) Kind() BlockKind { return BlockQuotationNode }
func (*CodeBlock) Kind() BlockKind      { return CodeBlockNode }
func (*Comment) Kind() BlockKind        { return CommentNode }
func (*NoTextileBlock) Kind() BlockKind { return NoTextileNode }
func (*Pre) Kind() BlockKind            { return PreNode }
func (*OrderedList) Kind() BlockKind    { return OrderedListNode }
func (*UnorderedList) Kind() BlockKind  { return UnorderedListNode }

// ListElement is an entry of a list: either an item or a nested list.
// A nested list is a sibling of the item that precedes it, not one of its children.
type ListElement interface {
	listElement()
}

// ListItem is a single '*' or '#' entry.
type ListItem struct {
	Attrs    Attributes
	Elements []Inline
}

// SubList wraps a deeper *OrderedList or *UnorderedList.
type SubList struct {
	List Block
}

func (*ListItem) listElement() {}
func (*SubList) listElement()  {}

// An InlineKind is the type of an Inline.
type InlineKind uint32

const (
	ErrorInline InlineKind = iota
	TextInline
	BreakInline
	BoldInline
	ItalicInline
	StrikethroughInline
	UnderlinedInline
	SubscriptInline
	SuperscriptInline
	SpanInline
	CitationInline
	CodeInline
	AbbreviationInline
	LinkInline
	ImageInline
)

// String returns a string representation of the InlineKind.
func (k InlineKind) String() string {
	switch k {
	case ErrorInline:
		return "Error"
	case TextInline:
		return "Text"
	case BreakInline:
		return "Break"
	case BoldInline:
		return "Bold"
	case ItalicInline:
		return "Italic"
	case StrikethroughInline:
		return "Strikethrough"
	case UnderlinedInline:
		return "Underlined"
	case SubscriptInline:
		return "Subscript"
	case SuperscriptInline:
		return "Superscript"
	case SpanInline:
		return "Span"
	case CitationInline:
		return "Citation"
	case CodeInline:
		return "Code"
	case AbbreviationInline:
		return "Abbreviation"
	case LinkInline:
		return "Link"
	case ImageInline:
		return "Image"
	}
	return "Invalid(" + strconv.Itoa(int(k)) + ")"
}

// Inline is a span-level element inside the text of a block.
type Inline interface {
	Kind() InlineKind
}

// BoldTag selects the HTML tag of a Bold element.
type BoldTag int

const (
	// Strong is written with single asterisks and renders as <strong>.
	Strong BoldTag = iota
	// PlainBold is written with double asterisks and renders as <b>.
	PlainBold
)

// ItalicTag selects the HTML tag of an Italic element.
type ItalicTag int

const (
	// Emphasis is written with single underscores and renders as <em>.
	Emphasis ItalicTag = iota
	// PlainItalic is written with double underscores and renders as <i>.
	PlainItalic
)

type Text struct {
	Text string
}

// Break is an explicit join between two source lines.
type Break struct{}

type Bold struct {
	Attrs    Attributes
	Elements []Inline
	Tag      BoldTag
}

type Italic struct {
	Attrs    Attributes
	Elements []Inline
	Tag      ItalicTag
}

type Strikethrough struct {
	Attrs    Attributes
	Elements []Inline
}

type Underlined struct {
	Attrs    Attributes
	Elements []Inline
}

type Subscript struct {
	Attrs    Attributes
	Elements []Inline
}

type Superscript struct {
	Attrs    Attributes
	Elements []Inline
}

type Span struct {
	Attrs    Attributes
	Elements []Inline
}

type Citation struct {
	Attrs    Attributes
	Elements []Inline
}

// Code is inline code. The text is raw and never tokenized.
type Code struct {
	Code string
}

type Abbreviation struct {
	Abbr       string
	Transcript string
}

type Link struct {
	Attrs    Attributes
	Href     string
	Title    string
	Elements []Inline
}

// Image is an inline image. A non-empty Href wraps the image in a link.
type Image struct {
	Attrs Attributes
	Src   string
	Href  string
	Alt   string
}

func (*Text) Kind() InlineKind          { return TextInline }
func (*Break) Kind() InlineKind         { return BreakInline }
func (*Bold) Kind() InlineKind          { return BoldInline }
func (*Italic) Kind() InlineKind        { return ItalicInline }
func (*Strikethrough) Kind() InlineKind { return StrikethroughInline }
func (*Underlined) Kind() InlineKind    { return UnderlinedInline }
func (*Subscript) Kind() InlineKind     { return SubscriptInline }
func (*Superscript) Kind() InlineKind   { return SuperscriptInline }
func (*Span) Kind() InlineKind          { return SpanInline }
func (*Citation) Kind() InlineKind      { return CitationInline }
func (*Code) Kind() InlineKind          { return CodeInline }
func (*Abbreviation) Kind() InlineKind  { return AbbreviationInline }
func (*Link) Kind() InlineKind          { return LinkInline }
func (*Image) Kind() InlineKind         { return ImageInline }

// children returns the nested inline elements of the container kinds, or nil.
func children(in Inline) []Inline {
	switch n := in.(type) {
	case *Bold:
		return n.Elements
	case *Italic:
		return n.Elements
	case *Strikethrough:
		return n.Elements
	case *Underlined:
		return n.Elements
	case *Subscript:
		return n.Elements
	case *Superscript:
		return n.Elements
	case *Span:
		return n.Elements
	case *Citation:
		return n.Elements
	case *Link:
		return n.Elements
	}
	return nil
}
