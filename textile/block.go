package textile

import (
	"regexp"
	"strconv"
	"strings"
)

// A blockRecognizer tries to build a block from the start of lines.
// It returns a nil Block when the lines do not start with its construct.
type blockRecognizer func(p *Parser, lines []string, depth int) (Block, int)

// blockRecognizers are tried in order. The paragraph recognizer is last and always matches.
var blockRecognizers []blockRecognizer

func init() {
	blockRecognizers = []blockRecognizer{
		(*Parser).parseBlockQuotation,
		(*Parser).parseCodeBlock,
		(*Parser).parseComment,
		(*Parser).parseHeading,
		(*Parser).parseNoTextile,
		(*Parser).parsePre,
		(*Parser).parseList,
		(*Parser).parseParagraph,
	}
}

// parseBlock builds the block at the start of lines and returns it with the number of lines
// it used, counting the blank lines before it and the blank line that ended it.
// When only blank lines are left the block is nil and all of them are consumed.
func (p *Parser) parseBlock(lines []string, depth int) (Block, int) {
	skipped := 0
	for skipped < len(lines) && isBlank(lines[skipped]) {
		skipped++
	}
	if skipped == len(lines) {
		return nil, skipped
	}
	rest := lines[skipped:]

	if depth > p.maxNesting() {
		p.logger().Debugw("nesting limit reached", "depth", depth)
		block, n := p.parseParagraph(rest, depth)
		return block, skipped + n
	}

	for _, recognize := range blockRecognizers {
		block, n := recognize(p, rest, depth)
		if block == nil {
			continue
		}
		p.logger().Debugw("block", "kind", block.Kind().String(), "lines", n, "depth", depth)
		return block, skipped + n
	}

	// Not reached, parseParagraph accepts any line
	return nil, len(lines)
}

// startsBlock reports whether line, probed on its own, opens a block other than an
// unmarked paragraph. It decides where a multi-line block ends.
func (p *Parser) startsBlock(line string, depth int) bool {
	if isBlank(line) {
		return false
	}
	switch b := p.probe(line, depth).(type) {
	case nil:
		return false
	case *Paragraph:
		return b.ExplicitMarker
	}
	return true
}

func (p *Parser) probe(line string, depth int) Block {
	block, _ := p.parseBlock([]string{line}, depth+1)
	return block
}

// blockBody collects the content of a block whose marker ends at offset end of the first line.
//
// In single-line mode the body ends at the first blank line, which is consumed but is not content.
// In multi-line mode the body ends before a line that follows a blank line and starts another block.
// Blank lines inside the body are kept, but not the ones at its end.
func (p *Parser) blockBody(lines []string, end int, multi bool, depth int) ([]string, int) {
	n := 1
	if multi {
		for ; n < len(lines); n++ {
			if isBlank(lines[n-1]) && p.startsBlock(lines[n], depth) {
				break
			}
		}
	} else {
		for n < len(lines) && !isBlank(lines[n]) {
			n++
		}
	}

	consumed := n
	if !multi && n < len(lines) {
		consumed++
	}

	body := make([]string, 0, n)
	if first := lines[0][end:]; len(first) > 0 || n == 1 {
		body = append(body, first)
	}
	body = append(body, lines[1:n]...)

	if multi {
		for len(body) > 1 && isBlank(body[len(body)-1]) {
			body = body[:len(body)-1]
		}
	}

	return body, consumed
}

// submatch returns the named group of a match made by re on s, and whether the group matched.
func submatch(re *regexp.Regexp, s string, loc []int, name string) (string, bool) {
	i := re.SubexpIndex(name)
	if i < 0 || 2*i+1 >= len(loc) || loc[2*i] < 0 {
		return "", false
	}
	return s[loc[2*i]:loc[2*i+1]], true
}

// marker matches re at the start of the line. It returns the match, the attributes
// in the marker and whether the marker selects multi-line mode.
func marker(re *regexp.Regexp, line string) (loc []int, attrs Attributes, multi bool) {
	loc = re.FindStringSubmatchIndex(line)
	if loc == nil {
		return nil, nil, false
	}
	if s, ok := submatch(re, line, loc, "attributes"); ok && len(s) > 0 {
		attrs = parseBlockAttributes(s)
	}
	mode, _ := submatch(re, line, loc, "mode")
	return loc, attrs, mode == ".."
}

func (p *Parser) parseBlockQuotation(lines []string, depth int) (Block, int) {
	loc, attrs, multi := marker(reBlockQuotation, lines[0])
	if loc == nil {
		return nil, 0
	}
	cite, _ := submatch(reBlockQuotation, lines[0], loc, "cite")

	body, consumed := p.blockBody(lines, loc[1], multi, depth)
	quote := &BlockQuotation{Attrs: attrs, Cite: cite}

	if !multi {
		quote.Blocks = []Block{&Paragraph{
			Attrs:    attrs,
			Elements: p.parseInlineElements(body, depth+1),
		}}
		return quote, consumed
	}

	// The quotation attributes are stamped on every paragraph of the body
	for i := 0; i < len(body); {
		if isBlank(body[i]) {
			i++
			continue
		}
		block, n := p.parseParagraph(body[i:], depth+1)
		para := block.(*Paragraph)
		para.Attrs = attrs
		quote.Blocks = append(quote.Blocks, para)
		i += n
	}

	return quote, consumed
}

func (p *Parser) parseCodeBlock(lines []string, depth int) (Block, int) {
	loc, attrs, multi := marker(reCodeBlock, lines[0])
	if loc == nil {
		return nil, 0
	}
	body, consumed := p.blockBody(lines, loc[1], multi, depth)
	return &CodeBlock{Attrs: attrs, Code: strings.Join(body, "\n")}, consumed
}

func (p *Parser) parseComment(lines []string, depth int) (Block, int) {
	loc, _, multi := marker(reComment, lines[0])
	if loc == nil {
		return nil, 0
	}
	body, consumed := p.blockBody(lines, loc[1], multi, depth)
	return &Comment{Lines: body}, consumed
}

func (p *Parser) parseHeading(lines []string, depth int) (Block, int) {
	loc, attrs, _ := marker(reHeading, lines[0])
	if loc == nil {
		return nil, 0
	}
	digit, _ := submatch(reHeading, lines[0], loc, "level")
	level, _ := strconv.Atoi(digit)

	body, consumed := p.blockBody(lines, loc[1], false, depth)
	return &Heading{
		Attrs:    attrs,
		Level:    level,
		Elements: p.parseInlineElements(body, depth+1),
	}, consumed
}

func (p *Parser) parseNoTextile(lines []string, depth int) (Block, int) {
	loc, _, multi := marker(reNoTextile, lines[0])
	if loc == nil {
		return nil, 0
	}
	body, consumed := p.blockBody(lines, loc[1], multi, depth)
	return &NoTextileBlock{Lines: body}, consumed
}

func (p *Parser) parsePre(lines []string, depth int) (Block, int) {
	loc, attrs, multi := marker(rePre, lines[0])
	if loc == nil {
		return nil, 0
	}
	body, consumed := p.blockBody(lines, loc[1], multi, depth)
	return &Pre{Attrs: attrs, Lines: body}, consumed
}

// parseParagraph accepts any text. The "p." marker is optional.
func (p *Parser) parseParagraph(lines []string, depth int) (Block, int) {
	para := &Paragraph{}
	end := 0
	if loc, attrs, _ := marker(reParagraph, lines[0]); loc != nil {
		para.Attrs = attrs
		para.ExplicitMarker = true
		end = loc[1]
	}

	body, consumed := p.blockBody(lines, end, false, depth)
	para.Elements = p.parseInlineElements(body, depth+1)
	return para, consumed
}
