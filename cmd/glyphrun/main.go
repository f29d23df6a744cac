/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// glyphrun prints the layout metrics of a text set in a TrueType font as JSON, and optionally
// writes the text to a PDF with the font embedded.
//
// Usage:
//
//	glyphrun [-font font.ttf] [-validate] [-size 12] [-o out.json] [-pdf out.pdf] [-v] text...
//	glyphrun -f [flags] file.txt
//
// Without text arguments the text is read from standard input.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/term"

	"github.com/unidoc/unifont/common"
	"github.com/unidoc/unifont/pdf/model/fonts"
)

type options struct {
	fontPath string
	srcFile  bool
	name     string
	size     float64
	output   string
	pdfPath  string
	verbose  bool
	validate bool
	indent   bool
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "glyphrun: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	opts := options{}
	fs := flag.NewFlagSet("glyphrun", flag.ContinueOnError)
	fs.BoolVar(&opts.srcFile, "f", false, "interpret the text argument as the path of a text file")
	fs.StringVar(&opts.fontPath, "font", "", "TrueType font file (default Go Regular)")
	fs.StringVar(&opts.name, "name", "", "font name (default the PostScript name)")
	fs.Float64Var(&opts.size, "size", 12, "font size in points")
	fs.StringVar(&opts.output, "o", "", "write the JSON report to this file")
	fs.StringVar(&opts.pdfPath, "pdf", "", "also write the text to this PDF file")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging to stderr")
	fs.BoolVar(&opts.validate, "validate", false, "reject fonts with bad table checksums")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if opts.size <= 0 {
		return fmt.Errorf("invalid font size %g", opts.size)
	}
	if opts.verbose {
		logger := logrus.New()
		logger.SetLevel(logrus.DebugLevel)
		common.SetLogger(common.NewLogrusLogger(logger))
	}
	if f, ok := stdout.(*os.File); ok && opts.output == "" {
		opts.indent = term.IsTerminal(int(f.Fd()))
	}

	text, err := readText(fs.Args(), opts.srcFile, stdin)
	if err != nil {
		return err
	}

	fnt, err := loadFont(opts)
	if err != nil {
		return err
	}
	rep, err := layoutText(fnt, text, opts.size)
	if err != nil {
		return err
	}

	if opts.pdfPath != "" {
		if err := writePDF(fnt, rep, opts.pdfPath); err != nil {
			return err
		}
		common.Log.Info("wrote %s", opts.pdfPath)
	}

	data, err := encodeReport(rep, opts.indent)
	if err != nil {
		return err
	}
	if opts.output != "" {
		return os.WriteFile(opts.output, data, 0644)
	}
	_, err = stdout.Write(data)
	return err
}

// readText returns the text given by `args`. With `srcFile` the single argument names a text
// file. Without arguments the text is read from `stdin`.
func readText(args []string, srcFile bool, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	switch {
	case srcFile && len(args) != 1:
		return "", fmt.Errorf("-f takes exactly one file argument, got %d", len(args))
	case srcFile:
		data, err = os.ReadFile(args[0])
	case len(args) == 0:
		data, err = io.ReadAll(stdin)
	default:
		return strings.Join(args, " "), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func loadFont(opts options) (*fonts.Font, error) {
	data, name := goregular.TTF, opts.name
	if opts.fontPath == "" {
		if name == "" {
			name = "GoRegular"
		}
	} else {
		var err error
		data, err = os.ReadFile(opts.fontPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", fonts.ErrFileUnreadable, err)
		}
	}
	if opts.validate {
		if err := fonts.Validate(data); err != nil {
			return nil, err
		}
		common.Log.Debug("checksums of %d bytes ok", len(data))
	}
	return fonts.NewFontFromBytes(data, name)
}

func encodeReport(rep *report, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rep); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
