/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf16"

	"seehuhn.de/go/postscript"
	"seehuhn.de/go/postscript/cid"

	"github.com/unidoc/unifont/common"
	"github.com/unidoc/unifont/pdf/core"
	"github.com/unidoc/unifont/pdf/internal/strutils"
	"github.com/unidoc/unifont/pdf/model/fonts"
)

// ErrInvalidCMap is returned when a CMap program cannot be run or defines no CMap.
var ErrInvalidCMap = errors.New("invalid CMap")

// ToUnicodeMap maps the 2 byte codes of an Identity-H font to text.
type ToUnicodeMap map[fonts.GlyphID]string

// ToUnicodeCMap is a ToUnicode CMap read back from its PostScript program.
type ToUnicodeCMap struct {
	Name string
	// SystemInfo is nil if the CMap has no CIDSystemInfo entry.
	SystemInfo *cid.SystemInfo
	Map        ToUnicodeMap
}

// ReadToUnicode runs the ToUnicode CMap program in `data` and collects its bfchar and bfrange
// mappings.
func ReadToUnicode(data []byte) (*ToUnicodeCMap, error) {
	dict, err := postscript.ReadCMap(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCMap, err)
	}
	info, ok := dict["CodeMap"].(*postscript.CMapInfo)
	if !ok {
		return nil, fmt.Errorf("%w: no code map", ErrInvalidCMap)
	}

	cm := &ToUnicodeCMap{Map: ToUnicodeMap{}}
	if name, ok := dict["CMapName"].(postscript.Name); ok {
		cm.Name = string(name)
	}
	if ros, ok := dict["CIDSystemInfo"].(postscript.Dict); ok {
		cm.SystemInfo = systemInfo(ros)
	}

	for _, m := range info.BfChars {
		code, err := hexCode(m.Src)
		if err != nil {
			return nil, err
		}
		dst, ok := m.Dst.(postscript.String)
		if !ok {
			common.Log.Debug("bfchar <%04x>: glyph name destination %v skipped", code, m.Dst)
			continue
		}
		cm.Map[code] = strutils.UTF16ToString(dst)
	}
	for _, m := range info.BfRanges {
		if err := addBfrange(cm.Map, m); err != nil {
			return nil, err
		}
	}
	common.Log.Trace("ToUnicode %s: %d mappings", cm.Name, len(cm.Map))
	return cm, nil
}

// ParseToUnicode returns the mappings of the ToUnicode CMap program in `data`.
func ParseToUnicode(data []byte) (ToUnicodeMap, error) {
	cm, err := ReadToUnicode(data)
	if err != nil {
		return nil, err
	}
	return cm.Map, nil
}

func systemInfo(ros postscript.Dict) *cid.SystemInfo {
	info := &cid.SystemInfo{}
	if s, ok := ros["Registry"].(postscript.String); ok {
		info.Registry = string(s)
	}
	if s, ok := ros["Ordering"].(postscript.String); ok {
		info.Ordering = string(s)
	}
	if n, ok := ros["Supplement"].(postscript.Integer); ok {
		info.Supplement = int32(n)
	}
	return info
}

func addBfrange(m ToUnicodeMap, r postscript.RangeMap) error {
	lo, err := hexCode(r.Low)
	if err != nil {
		return err
	}
	hi, err := hexCode(r.High)
	if err != nil {
		return err
	}

	switch dst := r.Dst.(type) {
	case postscript.Array:
		for i, obj := range dst {
			if int(lo)+i > int(hi) {
				break
			}
			s, ok := obj.(postscript.String)
			if !ok {
				return fmt.Errorf("%w: bfrange destination %v", core.ErrTypeError, obj)
			}
			m[lo+fonts.GlyphID(i)] = strutils.UTF16ToString(s)
		}
	case postscript.String:
		// The last UTF-16 unit is incremented through the range.
		units := decodeUnits(dst)
		if len(units) == 0 {
			return fmt.Errorf("%w: empty bfrange destination", core.ErrRangeError)
		}
		base := units[len(units)-1]
		for code := int(lo); code <= int(hi); code++ {
			units[len(units)-1] = base + uint16(code-int(lo))
			m[fonts.GlyphID(code)] = string(utf16.Decode(units))
		}
	default:
		return fmt.Errorf("%w: bfrange destination %v", core.ErrTypeError, r.Dst)
	}
	return nil
}

func decodeUnits(b []byte) []uint16 {
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		units = append(units, uint16(b[i])<<8|uint16(b[i+1]))
	}
	return units
}

func hexCode(b []byte) (fonts.GlyphID, error) {
	switch len(b) {
	case 1:
		return fonts.GlyphID(b[0]), nil
	case 2:
		return fonts.GlyphID(b[0])<<8 | fonts.GlyphID(b[1]), nil
	}
	return 0, fmt.Errorf("%w: %d byte code", core.ErrRangeError, len(b))
}
