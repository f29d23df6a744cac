/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package creator lays out pages of text runs and writes them as a PDF document.
package creator

import (
	"errors"
	"io"
	"os"

	"github.com/unidoc/unifont/common"
	"github.com/unidoc/unifont/pdf/contentstream"
	"github.com/unidoc/unifont/pdf/core"
	"github.com/unidoc/unifont/pdf/internal/transform"
	"github.com/unidoc/unifont/pdf/model"
	"github.com/unidoc/unifont/pdf/model/fonts"
)

// PageSize represents the page size as a 2 element array representing the width and height in
// PDF document units (points).
type PageSize [2]float64

// PageSizeA4 and PageSizeLetter are the common page sizes.
var (
	PageSizeA4     = PageSize{595.276, 841.89}
	PageSizeLetter = PageSize{612, 792}
)

// errNoPage is returned when drawing before NewPage.
var errNoPage = errors.New("no current page")

// Creator draws layout runs on pages. Coordinates passed to the Draw methods are measured from
// the top-left corner of the page in points.
type Creator struct {
	writer   *model.PdfWriter
	pageSize PageSize
	pages    []*page
	current  *page
}

type page struct {
	size     PageSize
	content  *contentstream.ContentCreator
	fontSeen map[string]bool
	fonts    []string
}

// New creates a new instance of the PDF Creator with letter sized pages.
func New() *Creator {
	return &Creator{
		writer:   model.NewPdfWriter(),
		pageSize: PageSizeLetter,
	}
}

// SetPageSize sets the page size of pages created after the call.
func (c *Creator) SetPageSize(size PageSize) {
	c.pageSize = size
}

// SetCompression enables or disables compression of content and CMap streams.
func (c *Creator) SetCompression(compress bool) {
	c.writer.SetCompression(compress)
}

// NewPage starts a new page, which becomes the target of Draw calls.
func (c *Creator) NewPage() {
	p := &page{
		size:     c.pageSize,
		content:  contentstream.NewContentCreator(),
		fontSeen: map[string]bool{},
	}
	c.pages = append(c.pages, p)
	c.current = p
}

// pageToPdf returns the transform from top-left page coordinates to PDF coordinates.
func (p *page) pageToPdf() transform.Matrix {
	return transform.NewMatrix(1, 0, 0, -1, 0, p.size[1])
}

// DrawRun draws `run`, laid out in `fnt`, with its baseline starting at `x`,`y`.
func (c *Creator) DrawRun(run *fonts.LayoutRun, fnt *fonts.Font, x, y float64) error {
	p := c.current
	if p == nil {
		return errNoPage
	}
	name, _, err := c.writer.AddFont(fnt)
	if err != nil {
		return err
	}
	if !p.fontSeen[name] {
		p.fontSeen[name] = true
		p.fonts = append(p.fonts, name)
	}

	px, py := p.pageToPdf().Transform(x, y)
	p.content.Add_BT().
		Add_Tf(core.PdfObjectName(name), run.FontSize).
		Add_Td(px, py).
		Add_TJRun(run, fnt.FontMetrics().Scale).
		Add_ET()
	return nil
}

// Draw draws `line` on the current page.
func (c *Creator) Draw(line *DottedLine) error {
	if c.current == nil {
		return errNoPage
	}
	line.Draw(c.current.content, c.current.pageToPdf())
	return nil
}

// DrawGuide draws a dotted guide of `length` points starting at `x`,`y`, such as a rule under
// a run.
func (c *Creator) DrawGuide(x, y, length float64) error {
	line := NewDottedLine(x, y, x+length, y)
	line.SetLineWidth(0.5)
	return c.Draw(line)
}

// Write writes the document to `w`.
func (c *Creator) Write(w io.Writer) error {
	for _, p := range c.pages {
		err := c.writer.AddPage(p.size[0], p.size[1], p.content.Bytes(), p.fonts)
		if err != nil {
			return err
		}
	}
	c.pages = nil
	c.current = nil
	common.Log.Debug("creator: %d pages", c.writer.NumPages())
	return c.writer.Write(w)
}

// WriteToFile writes the document to the file at `outputPath`.
func (c *Creator) WriteToFile(outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := c.Write(f); err != nil {
		return err
	}
	return f.Close()
}
