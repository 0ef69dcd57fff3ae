package textile

import (
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Attribute is one piece of an attribute annotation. The concrete types are
// Class, ID, Language, Align and Style.
type Attribute interface {
	attribute()
}

// Attributes is an ordered set of annotations. Only Style is merged, the rest
// may appear more than once.
type Attributes []Attribute

type Class struct {
	Names []string
}

type ID struct {
	Value string
}

type Language struct {
	Code string
}

// Align is only produced for images: left, center or right.
type Align struct {
	Value string
}

// StyleProp is a single CSS declaration.
type StyleProp struct {
	Key   string
	Value string
}

// Style is a set of CSS declarations with unique keys, kept in insertion order.
type Style struct {
	Props []StyleProp
}

func (Class) attribute()    {}
func (ID) attribute()       {}
func (Language) attribute() {}
func (Align) attribute()    {}
func (Style) attribute()    {}

// Set adds the declaration, overwriting the value of an existing key in place.
func (s *Style) Set(key, value string) {
	for i := range s.Props {
		if s.Props[i].Key == key {
			s.Props[i].Value = value
			return
		}
	}
	s.Props = append(s.Props, StyleProp{Key: key, Value: value})
}

// Get returns the value of the key and whether it was present.
func (s Style) Get(key string) (string, bool) {
	for _, p := range s.Props {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// String returns the declarations in CSS syntax, like "color: red; padding-left: 1em".
func (s Style) String() string {
	decls := make([]string, 0, len(s.Props))
	for _, p := range s.Props {
		decls = append(decls, p.Key+": "+p.Value)
	}
	return strings.Join(decls, "; ")
}

// parseAttributes recognizes the language, class/id and style groups, in that order,
// removing each one from the string. It returns the attributes found, the style
// (not yet added to the attributes) and what is left of the string.
func parseAttributes(s string) (Attributes, Style, string) {
	var attrs Attributes
	var style Style

	if loc := reLanguage.FindStringSubmatchIndex(s); loc != nil {
		attrs = append(attrs, Language{Code: s[loc[2]:loc[3]]})
		s = s[:loc[0]] + s[loc[1]:]
	}

	if loc := reClassID.FindStringSubmatchIndex(s); loc != nil {
		if loc[2] >= 0 {
			if names := strings.Fields(s[loc[2]:loc[3]]); len(names) > 0 {
				attrs = append(attrs, Class{Names: names})
			}
		}
		if loc[4] >= 0 {
			attrs = append(attrs, ID{Value: s[loc[4]:loc[5]]})
		}
		s = s[:loc[0]] + s[loc[1]:]
	}

	if loc := reStyle.FindStringSubmatchIndex(s); loc != nil {
		parseDeclarations(&style, s[loc[2]:loc[3]])
		s = s[:loc[0]] + s[loc[1]:]
	}

	return attrs, style, s
}

// parseDeclarations adds the CSS declarations in text to the style.
// The CSS parser loses the value of a last declaration that is not terminated, so a ";"
// is added when missing. Text that the CSS parser rejects, or that leaves a declaration
// without value, is split by hand, ignoring entries without a colon.
func parseDeclarations(style *Style, text string) {
	text = strings.TrimSpace(text)
	if len(text) > 0 && !strings.HasSuffix(text, ";") {
		text += ";"
	}

	decls, err := parser.ParseDeclarations(text)
	if err == nil && allHaveValues(decls) {
		for _, d := range decls {
			value := strings.TrimSpace(d.Value)
			if d.Important {
				value += " !important"
			}
			style.Set(strings.TrimSpace(d.Property), value)
		}
		return
	}

	for _, entry := range strings.Split(text, ";") {
		key, value, found := strings.Cut(entry, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if len(key) == 0 {
			continue
		}
		style.Set(key, strings.TrimSpace(value))
	}
}

func allHaveValues(decls []*css.Declaration) bool {
	for _, d := range decls {
		if len(strings.TrimSpace(d.Value)) == 0 {
			return false
		}
	}
	return true
}

// parseInlineAttributes strips a leading annotation cluster from the content of an
// inline element. When the cluster is the whole content, it is text and not an annotation.
func parseInlineAttributes(s string) (Attributes, string) {
	cluster := reLeadingAttrs.FindString(s)
	if len(cluster) == 0 || len(cluster) == len(s) {
		return nil, s
	}

	return clusterAttributes(cluster), s[len(cluster):]
}

// clusterAttributes resolves an annotation cluster like "[en](note#first){color: red}".
func clusterAttributes(cluster string) Attributes {
	if len(cluster) == 0 {
		return nil
	}
	attrs, style, _ := parseAttributes(cluster)
	if len(style.Props) > 0 {
		attrs = append(attrs, style)
	}
	return attrs
}

// parseBlockAttributes resolves the annotation found between a block tag and its dot.
// Block annotations also accept padding, a leading run like "((" or a trailing run like ")",
// and alignment, like "<>".
func parseBlockAttributes(s string) Attributes {
	attrs, style, rest := parseAttributes(s)

	// The alignment token is taken out first, so that it does not separate a padding run
	// from the end of the residue
	align := ""
	if loc := reAlignment.FindStringIndex(rest); loc != nil {
		align = rest[loc[0]:loc[1]]
		rest = rest[:loc[0]] + rest[loc[1]:]
	}

	if n := len(rePaddingLeft.FindString(rest)); n > 0 {
		style.Set("padding-left", strconv.Itoa(n)+"em")
	}
	if n := len(rePaddingRight.FindString(rest)); n > 0 {
		style.Set("padding-right", strconv.Itoa(n)+"em")
	}

	switch align {
	case "<>":
		style.Set("text-align", "justify")
	case "<":
		style.Set("text-align", "left")
	case ">":
		style.Set("text-align", "right")
	case "=":
		style.Set("text-align", "center")
	}

	if len(style.Props) > 0 {
		attrs = append(attrs, style)
	}
	return attrs
}
