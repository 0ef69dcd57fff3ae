package textile

import (
	"strings"

	"go.uber.org/zap"
)

// DefaultMaxNesting is the nesting depth used when Parser.MaxNesting is not set.
const DefaultMaxNesting = 64

// Parser converts Textile source into a Document.
// It holds only configuration, so a single Parser can be used from several goroutines.
type Parser struct {
	// MaxNesting bounds the recursion between blocks, lists and inline elements.
	// Content nested deeper than this is kept as literal text.
	MaxNesting int

	log *zap.SugaredLogger
}

// NewParser returns a Parser that logs its decisions to logger at debug level.
// A nil logger disables logging.
func NewParser(logger *zap.SugaredLogger) *Parser {
	if logger == nil {
		logger = nopLogger
	}
	return &Parser{
		MaxNesting: DefaultMaxNesting,
		log:        logger,
	}
}

// Parse converts the text with a default Parser.
func Parse(text string) *Document {
	return NewParser(nil).Parse(text)
}

// Parse splits the text into lines and consumes them one block at a time.
// It never fails: text which is not recognized as anything else ends up in a paragraph.
func (p *Parser) Parse(text string) *Document {
	lines := splitLines(text)
	doc := &Document{}

	for cursor := 0; cursor < len(lines); {
		block, consumed := p.parseBlock(lines[cursor:], 0)
		if block != nil {
			doc.Blocks = append(doc.Blocks, block)
		}
		if consumed < 1 {
			consumed = 1
		}
		cursor += consumed
	}

	p.logger().Debugw("document parsed", "lines", len(lines), "blocks", len(doc.Blocks))
	return doc
}

func (p *Parser) maxNesting() int {
	if p.MaxNesting <= 0 {
		return DefaultMaxNesting
	}
	return p.MaxNesting
}

var nopLogger = zap.NewNop().Sugar()

// logger supports a Parser created without NewParser.
func (p *Parser) logger() *zap.SugaredLogger {
	if p.log == nil {
		return nopLogger
	}
	return p.log
}

// splitLines normalizes line endings and splits the text into lines.
// A final newline does not produce an extra empty line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if len(text) == 0 {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

func isBlank(line string) bool {
	return len(strings.TrimSpace(line)) == 0
}
