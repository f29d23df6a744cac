/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/unidoc/unifont/pdf/model/fonts"
)

func goRegular(t *testing.T) *fonts.Font {
	fnt, err := fonts.NewFontFromBytes(goregular.TTF, "GoRegular")
	require.NoError(t, err)
	return fnt
}

func decodeReport(t *testing.T, data []byte) report {
	var rep report
	require.NoError(t, json.Unmarshal(data, &rep))
	return rep
}

func TestRunArgs(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-size", "10", "AVA", "To"}, strings.NewReader(""), &out)
	require.NoError(t, err)

	rep := decodeReport(t, out.Bytes())
	assert.Equal(t, "GoRegular", rep.Name)
	assert.Equal(t, "AVA To", rep.Text)
	assert.Equal(t, 10.0, rep.FontSize)

	lr, err := goRegular(t).LayoutRun("AVA To", 10)
	require.NoError(t, err)
	assert.InDelta(t, lr.Width(), rep.TotalWidth, 1e-9)
	assert.InDelta(t, lr.LineHeight, rep.LineHeight, 1e-9)
	assert.InDelta(t, lr.LineGap, rep.LineGap, 1e-9)

	require.Len(t, rep.Lines, 1)
	assert.Equal(t, "AVA To", rep.Lines[0].Value)
	require.Len(t, rep.Words, 2)
	assert.Equal(t, "AVA", rep.Words[0].Value)
	assert.Equal(t, "To", rep.Words[1].Value)
	assert.True(t, rep.Words[0].Width+rep.Words[1].Width < rep.TotalWidth)
}

func TestRunStdinLines(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-name", "Body"}, strings.NewReader("one two\nthree\n"), &out)
	require.NoError(t, err)

	rep := decodeReport(t, out.Bytes())
	assert.Equal(t, "Body", rep.Name)
	require.Len(t, rep.Lines, 2)
	assert.Equal(t, "one two", rep.Lines[0].Value)
	assert.Equal(t, "three", rep.Lines[1].Value)
	assert.Len(t, rep.Words, 3)

	// The whole text counts, not just the widest line.
	assert.InDelta(t, rep.Lines[0].Width+rep.Lines[1].Width, rep.TotalWidth, 1e-9)
	assert.True(t, rep.TotalWidth > rep.Lines[0].Width)
}

func TestRunOutputFiles(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "out.json")
	pdfPath := filepath.Join(dir, "out.pdf")

	var out bytes.Buffer
	err := run([]string{"-o", jsonPath, "-pdf", pdfPath, "Hello\nWorld"}, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	rep := decodeReport(t, data)
	assert.Len(t, rep.Lines, 2)

	pdf, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-1.7")))
	assert.True(t, bytes.Contains(pdf, []byte("/FontFile2")))
	assert.True(t, bytes.HasSuffix(pdf, []byte("%%EOF\n")))
}

func TestRunSourceFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("Kerning AV\r\nTo\n"), 0644))

	var out bytes.Buffer
	err := run([]string{"-size", "14", "-f", src}, strings.NewReader(""), &out)
	require.NoError(t, err)
	rep := decodeReport(t, out.Bytes())
	assert.Equal(t, "Kerning AV\r\nTo", rep.Text)
	require.Len(t, rep.Lines, 2)
	assert.Equal(t, "Kerning AV", rep.Lines[0].Value)
	assert.Equal(t, "To", rep.Lines[1].Value)
	assert.Len(t, rep.Words, 3)

	err = run([]string{"-f", src, "extra"}, strings.NewReader(""), &out)
	assert.Error(t, err)
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-size", "0", "x"}, strings.NewReader(""), &out)
	assert.Error(t, err)

	err = run([]string{"-font", filepath.Join(t.TempDir(), "missing.ttf"), "x"}, strings.NewReader(""), &out)
	assert.True(t, errors.Is(err, fonts.ErrFileUnreadable))

	err = run([]string{"\U0001F600"}, strings.NewReader(""), &out)
	assert.True(t, errors.Is(err, fonts.ErrGlyphNotMapped))
}

func TestRunValidate(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-validate", "AV"}, strings.NewReader(""), &out)
	require.NoError(t, err)

	// Flip a byte inside the glyf table; the table checksum no longer matches.
	data := append([]byte(nil), goregular.TTF...)
	numTables := int(binary.BigEndian.Uint16(data[4:]))
	for i := 0; i < numTables; i++ {
		rec := data[12+16*i:]
		if string(rec[:4]) == "glyf" {
			data[binary.BigEndian.Uint32(rec[8:])+100] ^= 0xff
		}
	}
	path := filepath.Join(t.TempDir(), "corrupted.ttf")
	require.NoError(t, os.WriteFile(path, data, 0644))

	out.Reset()
	err = run([]string{"-validate", "-font", path, "AV"}, strings.NewReader(""), &out)
	assert.True(t, errors.Is(err, fonts.ErrChecksum))
	assert.True(t, errors.Is(err, fonts.ErrFaceUnparseable))

	out.Reset()
	err = run([]string{"-font", path, "AV"}, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Equal(t, "AV", decodeReport(t, out.Bytes()).Text)
}
