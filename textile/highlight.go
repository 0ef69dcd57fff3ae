package textile

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	hlhtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

var errUnknownLanguage = errors.New("unknown language")

// highlight returns the code as HTML colored with inline styles, without the surrounding <pre>.
func (r *Renderer) highlight(code string, language string) ([]byte, error) {

	// Determine lexer. There is no guessing: the block must name the language.
	l := lexers.Get(language)
	if l == nil {
		return nil, errUnknownLanguage
	}
	l = chroma.Coalesce(l)

	// styles.Get returns the fallback style for an unknown name
	s := styles.Get(r.opts.CodeStyle)

	f := hlhtml.New(hlhtml.Standalone(false), hlhtml.PreventSurroundingPre(true))

	it, err := l.Tokenise(nil, code)
	if err != nil {
		return nil, fmt.Errorf("tokenising %s code: %w", language, err)
	}

	rb := &bytes.Buffer{}
	if err := f.Format(rb, s, it); err != nil {
		return nil, fmt.Errorf("formatting %s code: %w", language, err)
	}

	return rb.Bytes(), nil
}
