/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

import (
	"bytes"
	_ "embed"
	"encoding/hex"
	"fmt"
	"text/template"

	"seehuhn.de/go/postscript/cid"

	"github.com/unidoc/unifont/pdf/internal/strutils"
)

// maxBfcharEntries is the largest number of entries in a beginbfchar block.
const maxBfcharEntries = 100

//go:embed tounicode.tmpl
var toUnicodeText string

var toUnicodeTemplate = template.Must(template.New("tounicode").Parse(toUnicodeText))

// ucsSystemInfo is the character collection of ToUnicode CMaps.
var ucsSystemInfo = cid.SystemInfo{Registry: "Adobe", Ordering: "UCS", Supplement: 0}

// cmapPair maps a glyph id to its character in a ToUnicode CMap.
type cmapPair struct {
	gid GlyphID
	r   rune
}

type bfcharEntry struct {
	Src string
	Dst string
}

// cmapBlocks splits `pairs`, sorted by glyph id, into bfchar blocks. A block holds at most 100
// entries and all its glyph ids share the high byte.
func cmapBlocks(pairs []cmapPair) [][]cmapPair {
	var blocks [][]cmapPair
	var cur []cmapPair
	var tag GlyphID
	for _, p := range pairs {
		if len(cur) > 0 && (p.gid>>8 != tag || len(cur) == maxBfcharEntries) {
			blocks = append(blocks, cur)
			cur = nil
		}
		if len(cur) == 0 {
			tag = p.gid >> 8
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

// bfcharDst is the destination string of `r`: UTF-16BE hex, a surrogate pair outside the BMP.
func bfcharDst(r rune) string {
	return hex.EncodeToString(strutils.RuneToUTF16(r))
}

// makeToUnicode renders the ToUnicode CMap for the glyphs in `gt`.
func makeToUnicode(name string, gt *GlyphTable) ([]byte, error) {
	var pairs []cmapPair
	for _, gid := range gt.GlyphIDs() {
		pairs = append(pairs, cmapPair{gid: gid, r: gt.chars[gid]})
	}

	var blocks [][]bfcharEntry
	for _, block := range cmapBlocks(pairs) {
		entries := make([]bfcharEntry, 0, len(block))
		for _, p := range block {
			entries = append(entries, bfcharEntry{
				Src: fmt.Sprintf("%04x", uint16(p.gid)),
				Dst: bfcharDst(p.r),
			})
		}
		blocks = append(blocks, entries)
	}

	var buf bytes.Buffer
	err := toUnicodeTemplate.Execute(&buf, struct {
		Name   string
		ROS    cid.SystemInfo
		Blocks [][]bfcharEntry
	}{name, ucsSystemInfo, blocks})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
