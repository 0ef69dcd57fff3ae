package textile

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// An inlineRecognizer tries to build an element anchored at the start of s.
// It returns the element and the number of bytes it used, or zero when there is no match.
type inlineRecognizer func(p *Parser, s string, depth int) (Inline, int)

// inlineRecognizers are tried in order at every position of a line.
var inlineRecognizers []inlineRecognizer

func init() {
	inlineRecognizers = []inlineRecognizer{
		(*Parser).parseAbbreviation,
		(*Parser).parseBold,
		(*Parser).parseCitation,
		(*Parser).parseCode,
		(*Parser).parseImage,
		(*Parser).parseItalic,
		(*Parser).parseLink,
		(*Parser).parseNoTextileInline,
		(*Parser).parseSpan,
		(*Parser).parseStrikethrough,
		(*Parser).parseSubscript,
		(*Parser).parseSuperscript,
		(*Parser).parseUnderlined,
	}
}

// The bytes that can start an inline element, apart from upper case letters.
const inlineStart = "*?@!_\"=%-~^+"

var imageAlignment = map[string]string{"<": "left", "=": "center", ">": "right"}

// parseInlineElements tokenizes the lines of a block body. Lines are joined with a Break,
// except when the next line starts with a space.
func (p *Parser) parseInlineElements(lines []string, depth int) []Inline {
	var elements []Inline
	for i, line := range lines {
		elements = append(elements, p.parseInlineLine(line, depth)...)
		if i+1 < len(lines) && !strings.HasPrefix(lines[i+1], " ") {
			elements = append(elements, &Break{})
		}
	}
	return elements
}

// parseInlineLine scans s one code point at a time. Text between elements is accumulated
// and emitted as a single Text element.
func (p *Parser) parseInlineLine(s string, depth int) []Inline {
	if len(s) == 0 {
		return nil
	}
	if depth > p.maxNesting() {
		return []Inline{&Text{Text: s}}
	}

	var elements []Inline
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			elements = append(elements, &Text{Text: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])

		if strings.IndexByte(inlineStart, s[i]) >= 0 || unicode.IsUpper(r) {
			if node, n := p.recognizeInline(s[i:], depth); n > 0 {
				flush()
				elements = append(elements, node)
				i += n
				continue
			}
		}

		// An invalid byte decodes with size 1 and is copied as is
		text.WriteString(s[i : i+size])
		i += size
	}
	flush()

	return elements
}

func (p *Parser) recognizeInline(s string, depth int) (Inline, int) {
	for _, recognize := range inlineRecognizers {
		if node, n := recognize(p, s, depth); n > 0 {
			return node, n
		}
	}
	return nil, 0
}

// content resolves the attributes at the start of the text of an element and tokenizes the rest.
func (p *Parser) content(text string, depth int) (Attributes, []Inline) {
	attrs, rest := parseInlineAttributes(text)
	return attrs, p.parseInlineLine(rest, depth+1)
}

// delimited matches one of the patterns with count1, text and count2 groups.
// It returns the lengths of the delimiter runs, the text and the length of the match.
func delimited(re *regexp.Regexp, s string) (opening int, text string, closing int, n int) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, "", 0, 0
	}
	return len(m[1]), m[2], len(m[3]), len(m[0])
}

func (p *Parser) parseAbbreviation(s string, depth int) (Inline, int) {
	m := reAbbreviation.FindStringSubmatch(s)
	if m == nil {
		return nil, 0
	}
	abbr, transcript := m[1], m[2]
	if len(transcript) == 0 {
		return &Span{Elements: []Inline{&Text{Text: abbr}}}, len(abbr)
	}
	return &Abbreviation{Abbr: abbr, Transcript: transcript}, len(m[0])
}

// parseBold formats *strong* and **bold**. Any other pair of runs is literal text.
func (p *Parser) parseBold(s string, depth int) (Inline, int) {
	opening, text, closing, n := delimited(reBold, s)
	if n == 0 {
		return nil, 0
	}
	if opening != closing || opening > 2 {
		return &Text{Text: s[:n]}, n
	}
	tag := Strong
	if opening == 2 {
		tag = PlainBold
	}
	attrs, elements := p.content(text, depth)
	return &Bold{Attrs: attrs, Elements: elements, Tag: tag}, n
}

// parseItalic formats _emphasis_ and __italic__. Any other pair of runs is literal text.
func (p *Parser) parseItalic(s string, depth int) (Inline, int) {
	opening, text, closing, n := delimited(reItalic, s)
	if n == 0 {
		return nil, 0
	}
	if opening != closing || opening > 2 {
		return &Text{Text: s[:n]}, n
	}
	tag := Emphasis
	if opening == 2 {
		tag = PlainItalic
	}
	attrs, elements := p.content(text, depth)
	return &Italic{Attrs: attrs, Elements: elements, Tag: tag}, n
}

// parsePhrase handles the elements with a single form: both runs must have exactly width
// delimiters, otherwise the match is literal text.
func (p *Parser) parsePhrase(re *regexp.Regexp, width int, s string, depth int, build func(Attributes, []Inline) Inline) (Inline, int) {
	opening, text, closing, n := delimited(re, s)
	if n == 0 {
		return nil, 0
	}
	if opening != width || closing != width {
		return &Text{Text: s[:n]}, n
	}
	attrs, elements := p.content(text, depth)
	return build(attrs, elements), n
}

func (p *Parser) parseCitation(s string, depth int) (Inline, int) {
	return p.parsePhrase(reCitation, 2, s, depth, func(attrs Attributes, elements []Inline) Inline {
		return &Citation{Attrs: attrs, Elements: elements}
	})
}

func (p *Parser) parseSpan(s string, depth int) (Inline, int) {
	return p.parsePhrase(reSpan, 1, s, depth, func(attrs Attributes, elements []Inline) Inline {
		return &Span{Attrs: attrs, Elements: elements}
	})
}

func (p *Parser) parseStrikethrough(s string, depth int) (Inline, int) {
	return p.parsePhrase(reStrikethrough, 1, s, depth, func(attrs Attributes, elements []Inline) Inline {
		return &Strikethrough{Attrs: attrs, Elements: elements}
	})
}

func (p *Parser) parseSubscript(s string, depth int) (Inline, int) {
	return p.parsePhrase(reSubscript, 1, s, depth, func(attrs Attributes, elements []Inline) Inline {
		return &Subscript{Attrs: attrs, Elements: elements}
	})
}

func (p *Parser) parseSuperscript(s string, depth int) (Inline, int) {
	return p.parsePhrase(reSuperscript, 1, s, depth, func(attrs Attributes, elements []Inline) Inline {
		return &Superscript{Attrs: attrs, Elements: elements}
	})
}

func (p *Parser) parseUnderlined(s string, depth int) (Inline, int) {
	return p.parsePhrase(reUnderlined, 1, s, depth, func(attrs Attributes, elements []Inline) Inline {
		return &Underlined{Attrs: attrs, Elements: elements}
	})
}

// parseCode keeps the text between the @ delimiters raw.
func (p *Parser) parseCode(s string, depth int) (Inline, int) {
	opening, text, closing, n := delimited(reCode, s)
	if n == 0 {
		return nil, 0
	}
	if opening != 1 || closing != 1 {
		return &Text{Text: s[:n]}, n
	}
	return &Code{Code: text}, n
}

// parseNoTextileInline emits the text between == delimiters without formatting it.
func (p *Parser) parseNoTextileInline(s string, depth int) (Inline, int) {
	m := reNoTextileInline.FindStringSubmatch(s)
	if m == nil {
		return nil, 0
	}
	return &Text{Text: m[1]}, len(m[0])
}

// parseImage handles !(class)src(alt)!:href with an optional alignment after the first "!".
func (p *Parser) parseImage(s string, depth int) (Inline, int) {
	m := reImage.FindStringSubmatch(s)
	if m == nil {
		return nil, 0
	}
	align, descriptor, href := m[1], m[2], m[3]

	attrs, rest := parseInlineAttributes(descriptor)
	img := &Image{Src: rest, Href: href}
	if sm := reImageSource.FindStringSubmatch(rest); sm != nil {
		img.Src, img.Alt = sm[1], sm[2]
	}
	if value, ok := imageAlignment[align]; ok {
		attrs = append(attrs, Align{Value: value})
	}
	img.Attrs = attrs

	return img, len(m[0])
}

// parseLink handles "(class)text(title)":href. The text "$" is replaced by a label made from the href.
func (p *Parser) parseLink(s string, depth int) (Inline, int) {
	m := reLink.FindStringSubmatch(s)
	if m == nil {
		return nil, 0
	}
	text, href := m[1], m[2]

	link := &Link{Href: href}
	link.Attrs, text = parseInlineAttributes(text)
	if tm := reTrailingTitle.FindStringSubmatch(text); tm != nil {
		text, link.Title = tm[1], tm[2]
	}

	if text == "$" {
		link.Elements = []Inline{&Text{Text: linkLabel(href)}}
	} else {
		link.Elements = p.parseInlineLine(text, depth+1)
	}

	return link, len(m[0])
}

// linkLabel returns the visible text for a link written as "$":href.
// For "http://example.com/docs" it is "example.com/docs", for "mailto:me@example.com" it is "me@example.com".
func linkLabel(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if len(u.Host) > 0 {
		if len(u.Path) == 0 || u.Path == "/" {
			return u.Host
		}
		return u.Host + u.Path
	}
	if len(u.Opaque) > 0 {
		return u.Opaque
	}
	return href
}
