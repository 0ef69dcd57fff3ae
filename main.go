package main

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/hesusruiz/textile/textile"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// converter turns a Textile source into HTML. The options are resolved for each source
// in this order: defaults, configuration file, front matter of the source, command line flags.
type converter struct {
	base      textile.RenderOptions
	overrides func(*textile.RenderOptions)
	nfc       bool
	parser    *textile.Parser
	log       *zap.SugaredLogger
}

func newConverter(base *textile.RenderOptions, logger *zap.SugaredLogger) *converter {
	return &converter{
		base:   *base,
		parser: textile.NewParser(logger),
		log:    logger,
	}
}

// convert parses src and renders it. The parse tree is returned for the --parse flag.
// Unless the output is compressed it ends with a newline.
func (cv *converter) convert(src string) (*textile.Document, []byte, error) {
	if cv.nfc {
		src = norm.NFC.String(src)
	}

	opts := cv.base

	frontMatter, body, err := textile.SplitFrontMatter(src)
	switch {
	case err == nil:
		cfg, err := textile.ParseConfig(frontMatter)
		if err != nil {
			return nil, nil, err
		}
		if err := textile.ApplyConfig(&opts, cfg); err != nil {
			return nil, nil, err
		}
	case errors.Is(err, textile.ErrNoFrontMatter):
		if err != textile.ErrNoFrontMatter {
			// Something that looked like front matter but was not terminated
			cv.log.Warnw("front matter ignored", "error", err)
		}
	default:
		return nil, nil, err
	}

	if cv.overrides != nil {
		cv.overrides(&opts)
	}

	doc := cv.parser.Parse(body)
	html := textile.NewRenderer(&opts, cv.log).Render(doc)
	if !opts.Compress && len(html) > 0 {
		html = append(html, '\n')
	}
	cv.log.Debugw("converted", "blocks", len(doc.Blocks), "bytes", len(html))

	return doc, html, nil
}

func (cv *converter) convertFile(inputFileName string) (*textile.Document, []byte, error) {
	src, err := os.ReadFile(inputFileName)
	if err != nil {
		return nil, nil, err
	}
	return cv.convert(string(src))
}

// outputName replaces the extension of the input file name with ".html".
func outputName(inputFileName string) string {
	ext := path.Ext(inputFileName)
	if len(ext) == 0 {
		return inputFileName + ".html"
	}
	return strings.TrimSuffix(inputFileName, ext) + ".html"
}

// processWatch checks periodically if an input file (inputFileName) has been modified, and if so
// it processes the file and writes the result to the output file (outputFileName)
func processWatch(cv *converter, inputFileName string, outputFileName string) error {

	var old_timestamp time.Time
	var current_timestamp time.Time

	// Loop forever
	for {

		// Get the modified timestamp of the input file
		info, err := os.Stat(inputFileName)
		if err != nil {
			return err
		}
		current_timestamp = info.ModTime()

		// If current modified timestamp is newer than the previous timestamp, process the file
		if old_timestamp.Before(current_timestamp) {
			old_timestamp = current_timestamp
			fmt.Println("************Processing*************")
			_, html, err := cv.convertFile(inputFileName)
			if err != nil {
				// Keep watching, the next save may fix it
				cv.log.Errorw("conversion failed", "file", inputFileName, "error", err)
			} else if err := os.WriteFile(outputFileName, html, 0664); err != nil {
				return err
			}
		}

		// Check again in one second
		time.Sleep(1 * time.Second)

	}
}

// renderOptions builds the base options from the defaults and the --config file, and
// returns the overrides given in the command line.
func renderOptions(c *cli.Context) (*textile.RenderOptions, func(*textile.RenderOptions), error) {
	opts := textile.DefaultRenderOptions()

	if configFile := c.String("config"); len(configFile) > 0 {
		cfg, err := textile.ParseConfigFile(configFile)
		if err != nil {
			return nil, nil, err
		}
		if err := textile.ApplyConfig(opts, cfg); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", configFile, err)
		}
	}

	if c.IsSet("indent") && c.Int("indent") < 0 {
		return nil, nil, fmt.Errorf("indent must be a non-negative number")
	}

	overrides := func(o *textile.RenderOptions) {
		if c.IsSet("compress") {
			o.Compress = c.Bool("compress")
		}
		if c.IsSet("indent") {
			o.Indent = c.Int("indent")
		}
		if c.IsSet("highlight") {
			o.Highlight = c.Bool("highlight")
		}
		if c.IsSet("style") {
			o.CodeStyle = c.String("style")
		}
		if c.IsSet("diagrams") {
			o.Diagrams = c.Bool("diagrams")
		}
		if c.IsSet("escape") {
			o.EscapeText = c.Bool("escape")
		}
	}

	return opts, overrides, nil
}

// process is the main entry point of the program
func process(c *cli.Context) error {

	// Default input file name
	var inputFileName = "index.textile"

	// Output file name command line parameter
	outputFileName := c.String("output")

	// Dry run
	dryrun := c.Bool("dryrun")

	debug := c.Bool("debug")

	var z *zap.Logger
	var err error

	// Setup the logging system
	if debug {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	sugar := z.Sugar()
	defer sugar.Sync()

	// Get the input file name
	if c.Args().Present() {
		inputFileName = c.Args().First()
	} else {
		fmt.Printf("no input file provided, using \"%v\"\n", inputFileName)
	}

	// Generate the output file name
	if len(outputFileName) == 0 {
		outputFileName = outputName(inputFileName)
	}

	opts, overrides, err := renderOptions(c)
	if err != nil {
		return err
	}
	cv := newConverter(opts, sugar)
	cv.overrides = overrides
	cv.nfc = c.Bool("nfc")

	// Print a message
	if !dryrun {
		fmt.Printf("processing %v and generating %v\n", inputFileName, outputFileName)
	} else {
		fmt.Printf("dry run: processing %v without writing output\n", inputFileName)
	}

	// This is useful for development.
	// If the user specified to watch, loop forever processing the input file when modified
	if c.Bool("watch") {
		return processWatch(cv, inputFileName, outputFileName)
	}

	doc, html, err := cv.convertFile(inputFileName)
	if err != nil {
		return err
	}

	// Print the parse tree if requested
	if c.Bool("parse") {
		if err := textile.Dump(os.Stdout, doc); err != nil {
			return err
		}
	}

	// Do nothing if flag dryrun was specified
	if dryrun {
		return nil
	}

	// Write the HTML to the output file
	err = os.WriteFile(outputFileName, html, 0664)
	if err != nil {
		return err
	}

	return nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "textile",
		Version:  "v0.1.0",
		Compiled: time.Now(),
		Authors: []*cli.Author{
			{
				Name:  "Jesus Ruiz",
				Email: "hesus.ruiz@gmail.com",
			},
		},
		Usage:     "convert a Textile document to HTML",
		UsageText: "textile [options] [INPUT_FILE] (default input file is index.textile)",
		Action:    process,
		ArgsUsage: "INPUT_FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write html to `FILE` (default is input file name with extension .html)",
			},
			&cli.BoolFlag{
				Name:    "parse",
				Aliases: []string{"p"},
				Usage:   "print the parse tree to the standard output",
			},
			&cli.BoolFlag{
				Name:    "dryrun",
				Aliases: []string{"n"},
				Usage:   "do not generate output file, just process input file",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "run in debug mode",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "watch the file for changes",
			},
			&cli.BoolFlag{
				Name:    "compress",
				Aliases: []string{"c"},
				Usage:   "write the html without newlines or indentation",
			},
			&cli.IntFlag{
				Name:  "indent",
				Usage: "indent nested lists and quotations with `N` spaces per level",
				Value: 2,
			},
			&cli.BoolFlag{
				Name:  "highlight",
				Usage: "color code blocks that name their language, like bc(go).",
			},
			&cli.StringFlag{
				Name:  "style",
				Usage: "code highlighting `STYLE`",
				Value: "github",
			},
			&cli.BoolFlag{
				Name:  "diagrams",
				Usage: "render bc(d2). blocks as SVG diagrams",
			},
			&cli.BoolFlag{
				Name:  "escape",
				Usage: "escape HTML special characters in text",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "read rendering options from the YAML `FILE`",
			},
			&cli.BoolFlag{
				Name:  "nfc",
				Usage: "normalize the input to Unicode NFC before parsing",
			},
		},
	}
}

func main() {

	app := newApp()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

}
