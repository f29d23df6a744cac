/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package model assembles PDF documents from fonts, pages and content streams. PdfWriter is the
// document sink that fonts are embedded into.
package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"

	"github.com/unidoc/unifont/common"
	"github.com/unidoc/unifont/pdf/core"
	"github.com/unidoc/unifont/pdf/model/fonts"
)

// pdfVersion is written in the file header.
const pdfVersion = "1.7"

// ErrUnknownFont is returned when a page references a font that was not added to the writer.
var ErrUnknownFont = errors.New("unknown font resource")

// PdfWriter collects indirect objects and writes them out as a PDF file. Object numbers are
// assigned in the order objects are added. A PdfWriter is not safe for concurrent use.
type PdfWriter struct {
	objects  []core.PdfObject
	compress bool

	catalog  *core.PdfObjectDictionary
	pages    *core.PdfObjectDictionary
	pagesRef *core.PdfObjectReference
	kids     *core.PdfObjectArray

	fonts    map[[blake2b.Size256]byte]*embeddedFont
	fontRefs map[string]*core.PdfObjectReference
}

type embeddedFont struct {
	name string
	ref  *core.PdfObjectReference
}

// NewPdfWriter returns a writer for an empty document with stream compression enabled. The
// catalog and page tree are objects 1 and 2.
func NewPdfWriter() *PdfWriter {
	w := &PdfWriter{
		compress: true,
		kids:     core.MakeArray(),
		fonts:    map[[blake2b.Size256]byte]*embeddedFont{},
		fontRefs: map[string]*core.PdfObjectReference{},
	}

	w.catalog = core.MakeDict()
	w.catalog.Set("Type", core.MakeName("Catalog"))
	w.AddObject(w.catalog)

	w.pages = core.MakeDict()
	w.pages.Set("Type", core.MakeName("Pages"))
	w.pagesRef = w.AddObject(w.pages)
	w.catalog.Set("Pages", w.pagesRef)
	return w
}

// AddObject adds `obj` as an indirect object and returns its reference.
func (w *PdfWriter) AddObject(obj core.PdfObject) *core.PdfObjectReference {
	w.objects = append(w.objects, obj)
	ref := core.PdfObjectReference{ObjectNumber: int64(len(w.objects))}
	if stream, ok := obj.(*core.PdfObjectStream); ok {
		stream.PdfObjectReference = ref
	}
	return &ref
}

// SetCompression enables or disables Flate compression of content and CMap streams. Font
// programs are always stored uncompressed.
func (w *PdfWriter) SetCompression(compress bool) {
	w.compress = compress
}

// StreamEncoder returns the encoder for new streams, nil when compression is disabled.
func (w *PdfWriter) StreamEncoder() core.StreamEncoder {
	if !w.compress {
		return nil
	}
	return core.NewFlateEncoder()
}

// AddFont embeds `fnt` and returns its resource name and font dictionary reference. Fonts with
// identical font programs are embedded once.
func (w *PdfWriter) AddFont(fnt *fonts.Font) (string, *core.PdfObjectReference, error) {
	key := blake2b.Sum256(fnt.Data())
	if ef, ok := w.fonts[key]; ok {
		common.Log.Trace("font %s already embedded as %s", fnt.Name(), ef.name)
		return ef.name, ef.ref, nil
	}

	index := len(w.fonts) + 1
	dict, err := fnt.Embed(w, index)
	if err != nil {
		return "", nil, err
	}
	ef := &embeddedFont{name: fonts.ResourceName(index), ref: w.AddObject(dict)}
	w.fonts[key] = ef
	w.fontRefs[ef.name] = ef.ref
	return ef.name, ef.ref, nil
}

// AddPage appends a `width` x `height` point page showing `content`. `fontNames` are the
// resource names, as returned by AddFont, of the fonts that `content` uses.
func (w *PdfWriter) AddPage(width, height float64, content []byte, fontNames []string) error {
	fontRes := core.MakeDict()
	for _, name := range fontNames {
		ref, ok := w.fontRefs[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownFont, name)
		}
		fontRes.Set(core.PdfObjectName(name), ref)
	}
	resources := core.MakeDict()
	resources.Set("Font", fontRes)

	stream, err := core.MakeStream(content, w.StreamEncoder())
	if err != nil {
		return err
	}

	page := core.MakeDict()
	page.Set("Type", core.MakeName("Page"))
	page.Set("Parent", w.pagesRef)
	page.Set("MediaBox", core.MakeArrayFromFloats([]float64{0, 0, width, height}))
	page.Set("Resources", resources)
	page.Set("Contents", w.AddObject(stream))
	w.kids.Append(w.AddObject(page))
	return nil
}

// NumPages returns the number of pages added so far.
func (w *PdfWriter) NumPages() int {
	return w.kids.Len()
}

// Write writes the document to `out`.
func (w *PdfWriter) Write(out io.Writer) error {
	w.pages.Set("Kids", w.kids)
	w.pages.Set("Count", core.MakeInteger(int64(w.kids.Len())))

	cw := &countingWriter{w: bufio.NewWriter(out)}
	cw.printf("%%PDF-%s\n%%\xe2\xe3\xcf\xd3\n", pdfVersion)

	offsets := make([]int64, len(w.objects))
	for i, obj := range w.objects {
		offsets[i] = cw.pos
		cw.printf("%d 0 obj\n", i+1)
		if stream, ok := obj.(*core.PdfObjectStream); ok {
			cw.printf("%s\nstream\n", stream.PdfObjectDictionary.WriteString())
			cw.write(stream.Stream)
			cw.printf("\nendstream")
		} else {
			cw.printf("%s", obj.WriteString())
		}
		cw.printf("\nendobj\n")
	}

	xrefPos := cw.pos
	cw.printf("xref\n0 %d\n0000000000 65535 f\r\n", len(w.objects)+1)
	for _, offset := range offsets {
		cw.printf("%010d 00000 n\r\n", offset)
	}

	trailer := core.MakeDict()
	trailer.Set("Size", core.MakeInteger(int64(len(w.objects)+1)))
	trailer.Set("Root", &core.PdfObjectReference{ObjectNumber: 1})
	cw.printf("trailer\n%s\nstartxref\n%d\n%%%%EOF\n", trailer.WriteString(), xrefPos)

	if cw.err != nil {
		return cw.err
	}
	common.Log.Debug("wrote %d objects, %d pages, %d bytes", len(w.objects), w.kids.Len(), cw.pos)
	return cw.w.Flush()
}

// countingWriter tracks the output position for the xref table and keeps the first error.
type countingWriter struct {
	w   *bufio.Writer
	pos int64
	err error
}

func (cw *countingWriter) write(p []byte) {
	if cw.err != nil {
		return
	}
	n, err := cw.w.Write(p)
	cw.pos += int64(n)
	cw.err = err
}

func (cw *countingWriter) printf(format string, args ...interface{}) {
	cw.write([]byte(fmt.Sprintf(format, args...)))
}
