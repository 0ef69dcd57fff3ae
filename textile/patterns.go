package textile

import "regexp"

// The attribute cluster accepted after a block marker. Besides the language, class/id and
// style groups it allows the padding and alignment shorthand.
const blockAttrs = `(?:\[[^\]]*\]|\([^)]*\)|\{[^}]*\}|[<>=()]+)*`

// The attribute cluster accepted at the start of inline content and after list markers.
const inlineAttrs = `(?:\[[^\]]*\]|\([^)]*\)|\{[^}]*\})*`

// Block markers. All of them are anchored and must be followed by a space or the end of the line.
var (
	reBlockQuotation = regexp.MustCompile(`^bq(?P<attributes>` + blockAttrs + `)(?P<mode>\.\.?)(?::(?P<cite>\S+))?(?: |$)`)
	reCodeBlock      = regexp.MustCompile(`^bc(?P<attributes>` + blockAttrs + `)(?P<mode>\.\.?)(?: |$)`)
	reComment        = regexp.MustCompile(`^###(?P<mode>\.\.?)(?: |$)`)
	reHeading        = regexp.MustCompile(`^h(?P<level>[1-6])(?P<attributes>` + blockAttrs + `)\.(?: |$)`)
	reNoTextile      = regexp.MustCompile(`^notextile(?P<mode>\.\.?)(?: |$)`)
	rePre            = regexp.MustCompile(`^pre(?P<attributes>` + blockAttrs + `)(?P<mode>\.\.?)(?: |$)`)
	reParagraph      = regexp.MustCompile(`^p(?P<attributes>` + blockAttrs + `)\.(?: |$)`)
)

// List items
var (
	reOrderedItem   = regexp.MustCompile(`^(?P<level>#+)(?P<start>\d+)?(?P<attributes>` + inlineAttrs + `)(?: |$)`)
	reUnorderedItem = regexp.MustCompile(`^(?P<level>\*+)(?P<attributes>` + inlineAttrs + `)(?: |$)`)
)

// Attribute annotations
var (
	reLanguage       = regexp.MustCompile(`\[([A-Za-z]{2}(?:-[A-Za-z]{2})?)\]`)
	reClassID        = regexp.MustCompile(`\((?P<class>[\w\-. ]+)?(?:#(?P<id>[\w\-]+))?\)`)
	reStyle          = regexp.MustCompile(`\{([^{}]+)\}`)
	reLeadingAttrs   = regexp.MustCompile(`^` + inlineAttrs)
	rePaddingLeft    = regexp.MustCompile(`^\(+`)
	rePaddingRight   = regexp.MustCompile(`\)+$`)
	reAlignment      = regexp.MustCompile(`<>|<|>|=`)
	reTrailingTitle  = regexp.MustCompile(`^(.*?)\s*\(([^)]*)\)$`)
	reImageSource    = regexp.MustCompile(`^(?P<src>[^()\s]+)(?:\((?P<alt>[^)]*)\))?$`)
)

// Inline elements. The delimiter runs are captured separately so that the caller can
// decide whether the match is formatting or literal text.
var (
	reAbbreviation    = regexp.MustCompile(`^(?P<abbr>\p{Lu}{3,})(?:\((?P<transcript>[^)]*)\))?`)
	reBold            = regexp.MustCompile(`^(?P<count1>\*+)(?P<text>.+?)(?P<count2>\*+)`)
	reCitation        = regexp.MustCompile(`^(?P<count1>\?{2,})(?P<text>.+?)(?P<count2>\?{2,})`)
	reCode            = regexp.MustCompile(`^(?P<count1>@+)(?P<text>.*?)(?P<count2>@+)`)
	reImage           = regexp.MustCompile(`^!(?P<align>[<=>]?)(?P<descriptor>` + inlineAttrs + `[^\s!(){}\[\]]+(?:\([^)]*\))?)!(?::(?P<href>[^\s()]+))?`)
	reItalic          = regexp.MustCompile(`^(?P<count1>_+)(?P<text>.+?)(?P<count2>_+)`)
	reLink            = regexp.MustCompile(`^"(?P<text>[^"]+)":(?P<href>[^\s()]+)`)
	reNoTextileInline = regexp.MustCompile(`^==(?P<text>.*?)==`)
	reSpan            = regexp.MustCompile(`^(?P<count1>%+)(?P<text>.+?)(?P<count2>%+)`)
	reStrikethrough   = regexp.MustCompile(`^(?P<count1>-+)(?P<text>.+?)(?P<count2>-+)`)
	reSubscript       = regexp.MustCompile(`^(?P<count1>~+)(?P<text>.+?)(?P<count2>~+)`)
	reSuperscript     = regexp.MustCompile(`^(?P<count1>\^+)(?P<text>.+?)(?P<count2>\^+)`)
	reUnderlined      = regexp.MustCompile(`^(?P<count1>\++)(?P<text>.+?)(?P<count2>\++)`)
)
