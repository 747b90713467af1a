// webarchiveextractor extracts a Safari .webarchive file into a directory
// of plain files that can be opened directly in a browser.
//
// Usage:
//
//	webarchiveextractor [options] <input-file> <output-directory>
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v2"

	webarchive "github.com/Sicos1977/WebArchiveExtractor"
)

type options struct {
	IgnoreJavaScript bool   `long:"ignore-javascript" description:"Do not extract JavaScript files and blank their references"`
	Log              string `long:"log" description:"Write log output to this file, or - for stderr (the default)" value-name:"PATH"`
	Config           string `long:"config" description:"YAML file with default option values" value-name:"PATH"`

	Args struct {
		Input  string `positional-arg-name:"input-file" description:"The .webarchive file to extract"`
		Output string `positional-arg-name:"output-directory" description:"Directory to extract into (created if missing)"`
	} `positional-args:"yes" required:"yes"`
}

// config mirrors the flag surface for the --config YAML file. Flags given
// on the command line win over the file.
type config struct {
	IgnoreJavaScript bool   `yaml:"ignore_javascript"`
	Log              string `yaml:"log"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if opts.Config != "" {
		if err := applyConfig(&opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	logger, closeLog, err := openLog(opts.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(&opts, logger); err != nil {
		logger.Printf("error: %v", err)
		os.Exit(1)
	}
}

func run(opts *options, logger *log.Logger) error {
	if err := os.MkdirAll(opts.Args.Output, 0755); err != nil {
		return err
	}

	var extractorOptions webarchive.Options
	if opts.IgnoreJavaScript {
		extractorOptions |= webarchive.IgnoreJavaScriptFiles
	}

	extractor := &webarchive.Extractor{
		Options: extractorOptions,
		Logf:    logger.Printf,
	}
	return extractor.Extract(opts.Args.Input, opts.Args.Output)
}

func applyConfig(opts *options) error {
	raw, err := os.ReadFile(opts.Config)
	if err != nil {
		return err
	}
	var cfg config
	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return fmt.Errorf("config %s: %v", opts.Config, err)
	}
	if cfg.IgnoreJavaScript {
		opts.IgnoreJavaScript = true
	}
	if opts.Log == "" {
		opts.Log = cfg.Log
	}
	return nil
}

func openLog(path string) (*log.Logger, func(), error) {
	var sink io.Writer
	closer := func() {}
	switch path {
	case "", "-":
		sink = os.Stderr
	default:
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		sink = f
		closer = func() { f.Close() }
	}
	return log.New(sink, "", log.LstdFlags), closer, nil
}
