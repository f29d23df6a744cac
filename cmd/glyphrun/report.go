/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"strings"

	"github.com/unidoc/unifont/common"
	"github.com/unidoc/unifont/pdf/creator"
	"github.com/unidoc/unifont/pdf/model/fonts"
)

// margin is the distance of the first line from the top left page corner in points.
const margin = 72.0

type segment struct {
	Value string  `json:"value"`
	Width float64 `json:"width"`
}

// report is the JSON document printed for a text.
type report struct {
	Name       string    `json:"name"`
	Text       string    `json:"text"`
	FontSize   float64   `json:"font_size"`
	TotalWidth float64   `json:"total_width"`
	LineHeight float64   `json:"line_height"`
	LineGap    float64   `json:"line_gap"`
	Lines      []segment `json:"lines"`
	Words      []segment `json:"words"`

	runs []*fonts.LayoutRun
}

// layoutText lays out each line of `text` at `size` points. The total width is the advance of the
// whole text: the sum of the line widths, line breaks adding nothing.
func layoutText(fnt *fonts.Font, text string, size float64) (*report, error) {
	rep := &report{
		Name:       fnt.Name(),
		Text:       text,
		FontSize:   size,
		LineHeight: fnt.LineHeight(size),
		LineGap:    fnt.LineGap(size),
		Lines:      []segment{},
		Words:      []segment{},
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		run, err := fnt.LayoutRun(line, size)
		if err != nil {
			return nil, err
		}
		width := run.Width()
		rep.TotalWidth += width
		rep.runs = append(rep.runs, run)
		rep.Lines = append(rep.Lines, segment{Value: line, Width: width})
		for _, w := range run.Words() {
			rep.Words = append(rep.Words, segment{Value: w.Text, Width: w.Width})
		}
	}
	common.Log.Debug("%s: %d lines, %d words, width %.3f", rep.Name, len(rep.Lines), len(rep.Words),
		rep.TotalWidth)
	return rep, nil
}

// writePDF draws the lines of `rep` one below the other with a dotted guide along each baseline.
func writePDF(fnt *fonts.Font, rep *report, outputPath string) error {
	c := creator.New()
	c.NewPage()

	ascent := fnt.FontMetrics().AscenderScaled / 1000 * rep.FontSize
	y := margin + ascent
	for i, run := range rep.runs {
		if err := c.DrawRun(run, fnt, margin, y); err != nil {
			return err
		}
		if err := c.DrawGuide(margin, y, rep.Lines[i].Width); err != nil {
			return err
		}
		y += rep.LineHeight
	}
	return c.WriteToFile(outputPath)
}
