/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

import (
	"fmt"

	"seehuhn.de/go/postscript/cid"

	"github.com/unidoc/unifont/common"
	"github.com/unidoc/unifont/pdf/core"
)

// Font descriptor flags (PDF 32000-1:2008 table 123).
const (
	fontFlagFixedPitch  = 1 << 0
	fontFlagNonsymbolic = 1 << 5
	fontFlagItalic      = 1 << 6
)

// Stem widths reported for regular and bold fonts.
const (
	stemVRegular = 80
	stemVBold    = 120
	boldWeight   = 600
)

// identitySystemInfo is the character collection of Identity-H encoded CIDFonts.
var identitySystemInfo = cid.SystemInfo{Registry: "Adobe", Ordering: "Identity", Supplement: 0}

// DocumentSink receives the objects of an embedded font.
type DocumentSink interface {
	// AddObject registers `obj` as an indirect object and returns its reference.
	AddObject(obj core.PdfObject) *core.PdfObjectReference
	// StreamEncoder returns the encoder for content streams, nil for uncompressed output.
	StreamEncoder() core.StreamEncoder
}

// ResourceName returns the font resource name for embedding index `index`.
func ResourceName(index int) string {
	return fmt.Sprintf("F%d", index)
}

// Embed adds the font program, font descriptor and ToUnicode CMap of `f` to `sink` and returns
// the Type0 font dictionary named ResourceName(index). The dictionary itself is not added.
func (f *Font) Embed(sink DocumentSink, index int) (*core.PdfObjectDictionary, error) {
	name := ResourceName(index)

	fontFile, err := core.MakeStream(f.data, nil)
	if err != nil {
		return nil, err
	}
	fontFile.Set("Length1", core.MakeInteger(int64(len(f.data))))
	fontFileRef := sink.AddObject(fontFile)

	descriptorRef := sink.AddObject(f.makeDescriptor(name, fontFileRef))

	cmapData, err := makeToUnicode(name, f.glyphs)
	if err != nil {
		return nil, err
	}
	cmap, err := core.MakeStream(cmapData, sink.StreamEncoder())
	if err != nil {
		return nil, err
	}
	cmapRef := sink.AddObject(cmap)

	runs := compressWidths(f.scaledWidths())

	descendant := core.MakeDict()
	descendant.Set("Type", core.MakeName("Font"))
	descendant.Set("Subtype", core.MakeName("CIDFontType2"))
	descendant.Set("BaseFont", core.MakeName(name))
	descendant.Set("CIDSystemInfo", makeSystemInfo(identitySystemInfo))
	descendant.Set("W", makeWArray(runs))
	descendant.Set("DW", core.MakeInteger(defaultWidth))
	descendant.Set("FontDescriptor", descriptorRef)

	font := core.MakeDict()
	font.Set("Type", core.MakeName("Font"))
	font.Set("Subtype", core.MakeName("Type0"))
	font.Set("BaseFont", core.MakeName(name))
	font.Set("Encoding", core.MakeName("Identity-H"))
	font.Set("DescendantFonts", core.MakeArray(descendant))
	font.Set("ToUnicode", cmapRef)

	common.Log.Debug("embedded %s as %s (%s): %d bytes, %d glyphs, %d width runs",
		f.name, name, identitySystemInfo.String(), len(f.data), f.glyphs.Len(), len(runs))
	return font, nil
}

func makeSystemInfo(info cid.SystemInfo) *core.PdfObjectDictionary {
	d := core.MakeDict()
	d.Set("Registry", core.MakeString(info.Registry))
	d.Set("Ordering", core.MakeString(info.Ordering))
	d.Set("Supplement", core.MakeInteger(int64(info.Supplement)))
	return d
}

// makeDescriptor builds the FontDescriptor. The FontBBox spans all glyphs of the font laid side
// by side: [0 maxHeight totalWidth maxHeight].
func (f *Font) makeDescriptor(name string, fontFile *core.PdfObjectReference) *core.PdfObjectDictionary {
	var maxHeight, totalWidth float64
	for _, gm := range f.glyphs.metrics {
		totalWidth += gm.Width
		if gm.Height > maxHeight {
			maxHeight = gm.Height
		}
	}
	scale := f.metrics.Scale

	flags := fontFlagNonsymbolic
	stemV := stemVRegular
	if fd, ok := f.describer(); ok {
		if fd.IsFixedPitch() {
			flags |= fontFlagFixedPitch
		}
		if fd.IsItalic() {
			flags |= fontFlagItalic
		}
		if fd.WeightClass() >= boldWeight {
			stemV = stemVBold
		}
	}

	d := core.MakeDict()
	d.Set("Type", core.MakeName("FontDescriptor"))
	d.Set("FontName", core.MakeName(name))
	d.Set("Flags", core.MakeInteger(int64(flags)))
	d.Set("FontBBox", core.MakeArrayFromFloats([]float64{
		0, maxHeight * scale, totalWidth * scale, maxHeight * scale,
	}))
	d.Set("ItalicAngle", core.MakeInteger(0))
	d.Set("Ascent", core.MakeFloat(f.metrics.AscenderScaled))
	d.Set("Descent", core.MakeFloat(f.metrics.DescenderScaled))
	d.Set("CapHeight", core.MakeFloat(f.metrics.AscenderScaled))
	d.Set("StemV", core.MakeInteger(int64(stemV)))
	d.Set("FontFile2", fontFile)
	return d
}
