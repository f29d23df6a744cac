/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package extractor reads text back from content streams written with Identity-H fonts.
package extractor

import (
	"strings"

	"github.com/unidoc/unifont/common"
	"github.com/unidoc/unifont/pdf/contentstream"
	"github.com/unidoc/unifont/pdf/core"
	"github.com/unidoc/unifont/pdf/model/fonts"
)

// Extractor stores and offers functionality for extracting content from a page content stream.
type Extractor struct {
	contents string
	fonts    map[string]ToUnicodeMap
}

// New returns an Extractor for the content stream `contents`. `fontMaps` maps font resource
// names to their ToUnicode mappings.
func New(contents string, fontMaps map[string]ToUnicodeMap) *Extractor {
	return &Extractor{contents: contents, fonts: fontMaps}
}

// ExtractText returns the text shown in the content stream, one line per text object (BT ... ET).
// Codes without a mapping are replaced with U+FFFD.
func (e *Extractor) ExtractText() (string, error) {
	ops, err := contentstream.NewContentStreamParser(e.contents).Parse()
	if err != nil {
		return "", err
	}

	var lines []string
	var line strings.Builder
	var cmap ToUnicodeMap
	inText := false
	for _, op := range *ops {
		switch op.Operand {
		case "BT":
			inText = true
			line.Reset()
		case "ET":
			if inText {
				lines = append(lines, line.String())
			}
			inText = false
		case "Tf":
			if len(op.Params) != 2 {
				return "", core.ErrRangeError
			}
			name, ok := core.GetName(op.Params[0])
			if !ok {
				return "", core.ErrTypeError
			}
			cmap, ok = e.fonts[string(*name)]
			if !ok {
				common.Log.Debug("font %s has no ToUnicode map", *name)
			}
		case "Tj":
			if len(op.Params) == 1 {
				e.decode(&line, op.Params[0], cmap)
			}
		case "TJ":
			if len(op.Params) != 1 {
				continue
			}
			arr, ok := core.GetArray(op.Params[0])
			if !ok {
				return "", core.ErrTypeError
			}
			for _, obj := range arr.Elements() {
				e.decode(&line, obj, cmap)
			}
		}
	}
	return strings.Join(lines, "\n"), nil
}

// decode appends the text of the string `obj`. Other objects, such as TJ adjustments, are ignored.
func (e *Extractor) decode(b *strings.Builder, obj core.PdfObject, cmap ToUnicodeMap) {
	str, ok := obj.(*core.PdfObjectString)
	if !ok {
		return
	}
	data := str.Bytes()
	for i := 0; i+1 < len(data); i += 2 {
		code := fonts.GlyphID(data[i])<<8 | fonts.GlyphID(data[i+1])
		text, ok := cmap[code]
		if !ok {
			text = "\ufffd"
		}
		b.WriteString(text)
	}
}
