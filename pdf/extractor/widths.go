/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"fmt"

	"github.com/unidoc/unifont/pdf/core"
	"github.com/unidoc/unifont/pdf/model/fonts"
)

// DecodeWidths expands the W array of a CIDFont into a map from CID to width. Both the
// `c [w1 w2 ...]` and the `cfirst clast w` forms are accepted.
func DecodeWidths(w *core.PdfObjectArray) (map[fonts.GlyphID]float64, error) {
	widths := map[fonts.GlyphID]float64{}
	elems := w.Elements()
	for i := 0; i < len(elems); {
		first, ok := core.GetInt(elems[i])
		if !ok {
			return nil, fmt.Errorf("%w: W entry %d is %v", core.ErrTypeError, i, elems[i])
		}
		if i+1 >= len(elems) {
			return nil, fmt.Errorf("%w: W array truncated", core.ErrRangeError)
		}

		if arr, ok := core.GetArray(elems[i+1]); ok {
			for j, obj := range arr.Elements() {
				val, err := core.GetNumberAsFloat(obj)
				if err != nil {
					return nil, err
				}
				widths[fonts.GlyphID(int64(*first)+int64(j))] = val
			}
			i += 2
			continue
		}

		last, ok := core.GetInt(elems[i+1])
		if !ok || i+2 >= len(elems) {
			return nil, fmt.Errorf("%w: bad W range at entry %d", core.ErrRangeError, i)
		}
		val, err := core.GetNumberAsFloat(elems[i+2])
		if err != nil {
			return nil, err
		}
		for cid := int64(*first); cid <= int64(*last); cid++ {
			widths[fonts.GlyphID(cid)] = val
		}
		i += 3
	}
	return widths, nil
}
