package textile

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		args string
		want string
	}{
		{
			name: "Heading with bold",
			args: "h1. *Textile markup language*",
			want: "<h1><strong>Textile markup language</strong></h1>",
		},
		{
			name: "Paragraph with break",
			args: "Paragraph\nwith text",
			want: "<p>Paragraph<br>with text</p>",
		},
		{
			name: "Several blocks",
			args: "h2. Title\n\nText",
			want: "<h2>Title</h2>\n<p>Text</p>",
		},
		{
			name: "Abbreviation",
			args: "ABBR(Abbreviation)",
			want: `<p><acronym title="Abbreviation"><span>ABBR</span></acronym></p>`,
		},
		{
			name: "Link with dollar",
			args: `"$":http://example.com`,
			want: `<p><a href="http://example.com">example.com</a></p>`,
		},
		{
			name: "Link with title and class",
			args: `"(ext)Site(Home)":http://x.com`,
			want: `<p><a href="http://x.com" title="Home" class="ext">Site</a></p>`,
		},
		{
			name: "Image with link",
			args: "!>logo.png(Logo)!:http://x.com",
			want: `<p><a href="http://x.com"><img src="logo.png" align="right" alt="Logo" title="Logo"></a></p>`,
		},
		{
			name: "Image without alt",
			args: "!pic.jpg!",
			want: `<p><img src="pic.jpg" alt=""></p>`,
		},
		{
			name: "Phrases",
			args: "**b** __i__ -d- +u+ ~s~ ^p^ ??c?? @x@",
			want: "<p><b>b</b> <i>i</i> <del>d</del> <ins>u</ins> <sub>s</sub> <sup>p</sup> <cite>c</cite> <code>x</code></p>",
		},
		{
			name: "Attribute order",
			args: "p(cls#main)[en]{color: red}. Hi",
			want: `<p class="cls" id="main" lang="en" style="color: red">Hi</p>`,
		},
		{
			name: "Style without spaces",
			args: "p{color:red}. x",
			want: `<p style="color: red">x</p>`,
		},
		{
			name: "Span with style",
			args: "%{color: red}x%",
			want: `<p><span style="color: red">x</span></p>`,
		},
		{
			name: "Nested list",
			args: "* A\n** B\n* C",
			want: "<ul>\n  <li>A</li>\n  <ul>\n    <li>B</li>\n  </ul>\n  <li>C</li>\n</ul>",
		},
		{
			name: "Ordered list with start",
			args: "#5 five\n# six",
			want: "<ol start=\"5\">\n  <li>five</li>\n  <li>six</li>\n</ol>",
		},
		{
			name: "Quotation",
			args: "bq.. A\n\nB",
			want: "<blockquote>\n  <p>A</p>\n  <p>B</p>\n</blockquote>",
		},
		{
			name: "Quotation with cite",
			args: "bq.:http://example.com Quote",
			want: "<blockquote cite=\"http://example.com\">\n  <p>Quote</p>\n</blockquote>",
		},
		{
			name: "Code block",
			args: "bc. if a < b {",
			want: "<pre><code>if a < b {</code></pre>",
		},
		{
			name: "Pre",
			args: "pre. a\n  b",
			want: "<pre>a\n  b</pre>",
		},
		{
			name: "No textile",
			args: "notextile. <div>*raw*</div>",
			want: "<div>*raw*</div>",
		},
		{
			name: "Comment is omitted",
			args: "###. hidden\n\nshown",
			want: "<p>shown</p>",
		},
		{
			name: "Empty document",
			args: "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.args))
		})
	}
}

func TestRenderOptions(t *testing.T) {
	tests := []struct {
		name string
		args string
		opts RenderOptions
		want string
	}{
		{
			name: "Compress",
			args: "* A\n** B\n* C\n\nText",
			opts: RenderOptions{Compress: true, Indent: 2},
			want: "<ul><li>A</li><ul><li>B</li></ul><li>C</li></ul><p>Text</p>",
		},
		{
			name: "Compressed quotation",
			args: "bq. Quote",
			opts: RenderOptions{Compress: true},
			want: "<blockquote><p>Quote</p></blockquote>",
		},
		{
			name: "Indent of four",
			args: "* A\n** B",
			opts: RenderOptions{Indent: 4},
			want: "<ul>\n    <li>A</li>\n    <ul>\n        <li>B</li>\n    </ul>\n</ul>",
		},
		{
			name: "Escape code",
			args: "bc. if a < b && c {",
			opts: RenderOptions{EscapeText: true, Indent: 2},
			want: "<pre><code>if a &lt; b &amp;&amp; c {</code></pre>",
		},
		{
			name: "Escape text and attributes",
			args: `"Tom & Jerry(say <hi>)":http://x.com?a=1&b=2`,
			opts: RenderOptions{EscapeText: true},
			want: `<p><a href="http://x.com?a=1&amp;b=2" title="say &lt;hi&gt;">Tom &amp; Jerry</a></p>`,
		},
		{
			name: "Unknown language is not highlighted",
			args: "bc(nolanguage). x",
			opts: RenderOptions{Highlight: true, CodeStyle: "github"},
			want: `<pre class="nolanguage"><code>x</code></pre>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderWith(tt.args, &tt.opts))
		})
	}
}

func TestRenderHighlight(t *testing.T) {
	opts := DefaultRenderOptions()
	opts.Highlight = true

	out := RenderWith("bc(go). func main() {}", opts)
	assert.True(t, strings.HasPrefix(out, `<pre class="go"><code>`), out)
	assert.True(t, strings.HasSuffix(out, "</code></pre>"), out)
	assert.Contains(t, out, "<span")
	assert.Contains(t, out, "main")
}

func TestRenderDiagram(t *testing.T) {
	if testing.Short() {
		t.Skip("diagram layout is slow")
	}

	opts := DefaultRenderOptions()
	opts.Diagrams = true

	r := NewRenderer(opts, nil)
	doc := Parse("bc(d2). a -> b\n\nbc(d2). a -> b")
	out := string(r.Render(doc))

	assert.True(t, strings.HasPrefix(out, `<figure class="diagram">`), out)
	assert.Contains(t, out, "<svg")
	assert.Equal(t, 2, strings.Count(out, `<figure class="diagram">`))
}

func TestRenderIsWellFormed(t *testing.T) {
	src := strings.Join([]string{
		"h1(title). Document",
		"",
		"p. Some *strong* and _emphasized_ text with a \"link\":http://example.com",
		"",
		"bq.. First",
		"",
		"Second",
		"",
		"# one",
		"## one.one",
		"# two",
	}, "\n")

	doc, err := html.Parse(strings.NewReader(Render(src)))
	require.NoError(t, err)

	count := func(selector string) int {
		return len(cascadia.MustCompile(selector).MatchAll(doc))
	}
	assert.Equal(t, 1, count("body > h1.title"))
	assert.Equal(t, 1, count("body > p > strong"))
	assert.Equal(t, 1, count("body > p > em"))
	assert.Equal(t, 1, count(`body > p > a[href="http://example.com"]`))
	assert.Equal(t, 2, count("body > blockquote > p"))
	assert.Equal(t, 2, count("body > ol > li"))
	assert.Equal(t, 1, count("body > ol > ol > li"))
}
