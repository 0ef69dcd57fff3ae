package textile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBlockAttributes(t *testing.T) {
	tests := []struct {
		name string
		args string
		want Attributes
	}{
		{
			name: "Empty",
			args: "",
			want: nil,
		},
		{
			name: "Class and id",
			args: "(intro big#first)",
			want: Attributes{Class{Names: []string{"intro", "big"}}, ID{Value: "first"}},
		},
		{
			name: "Id only",
			args: "(#first)",
			want: Attributes{ID{Value: "first"}},
		},
		{
			name: "Language with region",
			args: "[en-GB]",
			want: Attributes{Language{Code: "en-GB"}},
		},
		{
			name: "Style",
			args: "{color: red; font-size: 2em}",
			want: Attributes{Style{Props: []StyleProp{{Key: "color", Value: "red"}, {Key: "font-size", Value: "2em"}}}},
		},
		{
			name: "Style without spaces",
			args: "{color:red}",
			want: Attributes{Style{Props: []StyleProp{{Key: "color", Value: "red"}}}},
		},
		{
			name: "Several declarations without spaces",
			args: "{color:red;margin:0}",
			want: Attributes{Style{Props: []StyleProp{{Key: "color", Value: "red"}, {Key: "margin", Value: "0"}}}},
		},
		{
			name: "Later declaration wins",
			args: "{color: red; color: blue}",
			want: Attributes{Style{Props: []StyleProp{{Key: "color", Value: "blue"}}}},
		},
		{
			name: "Padding left",
			args: "((",
			want: Attributes{Style{Props: []StyleProp{{Key: "padding-left", Value: "2em"}}}},
		},
		{
			name: "Padding right and justify",
			args: ")<>",
			want: Attributes{Style{Props: []StyleProp{{Key: "padding-right", Value: "1em"}, {Key: "text-align", Value: "justify"}}}},
		},
		{
			name: "Padding around alignment",
			args: "((=)",
			want: Attributes{Style{Props: []StyleProp{{Key: "padding-left", Value: "2em"}, {Key: "padding-right", Value: "1em"}, {Key: "text-align", Value: "center"}}}},
		},
		{
			name: "Padding after a class",
			args: "(a)((",
			want: Attributes{Class{Names: []string{"a"}}, Style{Props: []StyleProp{{Key: "padding-left", Value: "2em"}}}},
		},
		{
			name: "Parentheses that are not at the ends",
			args: ")(",
			want: nil,
		},
		{
			name: "Everything",
			args: "[fr](big)=",
			want: Attributes{
				Language{Code: "fr"},
				Class{Names: []string{"big"}},
				Style{Props: []StyleProp{{Key: "text-align", Value: "center"}}},
			},
		},
		{
			name: "Alignment left and right",
			args: "<",
			want: Attributes{Style{Props: []StyleProp{{Key: "text-align", Value: "left"}}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseBlockAttributes(tt.args))
		})
	}
}

func TestParseInlineAttributes(t *testing.T) {
	tests := []struct {
		name      string
		args      string
		wantAttrs Attributes
		wantRest  string
	}{
		{
			name:     "No annotation",
			args:     "plain text",
			wantRest: "plain text",
		},
		{
			name:      "Class",
			args:      "(note)text",
			wantAttrs: Attributes{Class{Names: []string{"note"}}},
			wantRest:  "text",
		},
		{
			name:     "Annotation is the whole text",
			args:     "(note)",
			wantRest: "(note)",
		},
		{
			name:      "Language and style",
			args:      "[en]{color:red}hello",
			wantAttrs: Attributes{Language{Code: "en"}, Style{Props: []StyleProp{{Key: "color", Value: "red"}}}},
			wantRest:  "hello",
		},
		{
			name:      "Style without spaces",
			args:      "{color:red}x",
			wantAttrs: Attributes{Style{Props: []StyleProp{{Key: "color", Value: "red"}}}},
			wantRest:  "x",
		},
		{
			name:     "Annotation not at the start",
			args:     "some (text)",
			wantRest: "some (text)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, rest := parseInlineAttributes(tt.args)
			assert.Equal(t, tt.wantAttrs, attrs)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestParseDeclarations(t *testing.T) {
	tests := []struct {
		name string
		args string
		want string
	}{
		{name: "One declaration", args: "color: red", want: "color: red"},
		{name: "No spaces", args: "color:red", want: "color: red"},
		{name: "Terminated", args: "color: red;", want: "color: red"},
		{name: "Two declarations", args: "color: red; margin: 0", want: "color: red; margin: 0"},
		{name: "Duplicate keys", args: "color:red;color:blue", want: "color: blue"},
		{name: "Important", args: "color: red !important", want: "color: red !important"},
		{name: "Entry without colon", args: "color: red; bogus", want: "color: red"},
		{name: "Empty", args: "  ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Style
			parseDeclarations(&s, tt.args)
			assert.Equal(t, tt.want, s.String())
		})
	}
}

func TestStyle(t *testing.T) {
	var s Style
	s.Set("color", "red")
	s.Set("margin", "0")
	s.Set("color", "blue")

	v, ok := s.Get("color")
	assert.True(t, ok)
	assert.Equal(t, "blue", v)

	_, ok = s.Get("padding")
	assert.False(t, ok)

	assert.Equal(t, "color: blue; margin: 0", s.String())
}
