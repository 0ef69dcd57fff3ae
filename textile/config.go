package textile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hesusruiz/vcutils/yaml"
)

// ErrNoFrontMatter is reported, possibly wrapped, by SplitFrontMatter when src does not
// start with a terminated YAML block.
var ErrNoFrontMatter = errors.New("no front matter")

// SplitFrontMatter separates the YAML metadata at the beginning of src, enclosed between
// two lines starting with "---", from the Textile text that follows it.
// When there is no metadata, or it is not terminated, the error wraps ErrNoFrontMatter
// and body is the whole src.
func SplitFrontMatter(src string) (frontMatter string, body string, err error) {
	lines := splitLines(src)

	// Blank lines before the metadata are allowed
	first := 0
	for first < len(lines) && isBlank(lines[first]) {
		first++
	}

	// We accept YAML data only at the beginning of the file
	if first == len(lines) || !strings.HasPrefix(lines[first], "---") {
		return "", src, ErrNoFrontMatter
	}

	// Build a string with all subsequent lines up to the next "---"
	var yamlString strings.Builder
	for i := first + 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "---") {
			return yamlString.String(), strings.Join(lines[i+1:], "\n"), nil
		}
		yamlString.WriteString(lines[i])
		yamlString.WriteString("\n")
	}

	return "", src, fmt.Errorf("end of input reached but no end of YAML section found: %w", ErrNoFrontMatter)
}

// ParseConfig parses YAML text, like the front matter of a document.
func ParseConfig(yamlText string) (*yaml.YAML, error) {
	cfg, err := yaml.ParseYaml(yamlText)
	if err != nil {
		return nil, fmt.Errorf("malformed YAML metadata: %w", err)
	}
	return cfg, nil
}

// ParseConfigFile parses a YAML configuration file.
func ParseConfigFile(fileName string) (*yaml.YAML, error) {
	cfg, err := yaml.ParseYamlFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("reading configuration %s: %w", fileName, err)
	}
	return cfg, nil
}

// ApplyConfig sets the options present in the "textile" section of cfg:
//
//	textile:
//	  compress: false
//	  indent: 4
//	  highlight: true
//	  codeStyle: dracula
//	  diagrams: true
//	  escape: false
//
// Options missing from cfg keep their value.
func ApplyConfig(opts *RenderOptions, cfg *yaml.YAML) error {
	if cfg == nil {
		return nil
	}

	setBool := func(path string, value *bool) {
		if _, err := cfg.Get(path); err == nil {
			*value = cfg.Bool(path)
		}
	}
	setBool("textile.compress", &opts.Compress)
	setBool("textile.highlight", &opts.Highlight)
	setBool("textile.diagrams", &opts.Diagrams)
	setBool("textile.escape", &opts.EscapeText)

	opts.CodeStyle = cfg.String("textile.codeStyle", opts.CodeStyle)

	if indent := cfg.String("textile.indent", ""); len(indent) > 0 {
		n, err := strconv.Atoi(indent)
		if err != nil || n < 0 {
			return fmt.Errorf("textile.indent must be a non-negative number, found %q", indent)
		}
		opts.Indent = n
	}

	return nil
}
