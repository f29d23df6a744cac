/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"github.com/unidoc/unifont/pdf/core"
	"github.com/unidoc/unifont/pdf/internal/transform"
)

// ContentCreator is a builder for PDF content streams.
type ContentCreator struct {
	operands ContentStreamOperations
}

// NewContentCreator returns a new initialized ContentCreator.
func NewContentCreator() *ContentCreator {
	return &ContentCreator{operands: ContentStreamOperations{}}
}

// Operations returns the list of operations.
func (cc *ContentCreator) Operations() *ContentStreamOperations {
	return &cc.operands
}

// Bytes converts the content stream operations to a content stream byte presentation, i.e. the
// kind that can be stored as a PDF stream or string format.
func (cc *ContentCreator) Bytes() []byte {
	return cc.operands.Bytes()
}

// String is same as Bytes() except returns as a string for convenience.
func (cc *ContentCreator) String() string {
	return string(cc.operands.Bytes())
}

// AddOperand adds a specified operand.
func (cc *ContentCreator) AddOperand(op ContentStreamOperation) *ContentCreator {
	cc.operands = append(cc.operands, &op)
	return cc
}

func (cc *ContentCreator) add(operand string, params ...core.PdfObject) *ContentCreator {
	return cc.AddOperand(ContentStreamOperation{Operand: operand, Params: params})
}

// Graphics state operators.

// Add_q adds 'q' operand to the content stream: Pushes the current graphics state on the stack.
func (cc *ContentCreator) Add_q() *ContentCreator {
	return cc.add("q")
}

// Add_Q adds 'Q' operand to the content stream: Pops the most recently stored state from the stack.
func (cc *ContentCreator) Add_Q() *ContentCreator {
	return cc.add("Q")
}

// Add_cm adds 'cm' operation to the content stream: Modifies the current transformation matrix
// (ctm) of the graphics state.
func (cc *ContentCreator) Add_cm(a, b, c, d, e, f float64) *ContentCreator {
	return cc.add("cm", makeFloats(a, b, c, d, e, f)...)
}

// Add_cmMatrix adds 'cm' operation with the coefficients of `m`.
func (cc *ContentCreator) Add_cmMatrix(m transform.Matrix) *ContentCreator {
	return cc.Add_cm(m[0], m[1], m[3], m[4], m[6], m[7])
}

// Add_w adds 'w' operand to the content stream, which sets the line width.
func (cc *ContentCreator) Add_w(lineWidth float64) *ContentCreator {
	return cc.add("w", core.MakeFloat(lineWidth))
}

// Add_d adds 'd' operand to the content stream: Set the line dash pattern.
func (cc *ContentCreator) Add_d(dashArray []int64, dashPhase int64) *ContentCreator {
	dash := core.MakeArray()
	for _, v := range dashArray {
		dash.Append(core.MakeInteger(v))
	}
	return cc.add("d", dash, core.MakeInteger(dashPhase))
}

// Path construction and painting.

// Add_m adds 'm' operand to the content stream: Move the current point to (x,y).
func (cc *ContentCreator) Add_m(x, y float64) *ContentCreator {
	return cc.add("m", makeFloats(x, y)...)
}

// Add_l adds 'l' operand to the content stream: Append a straight line segment from the current
// point to (x,y).
func (cc *ContentCreator) Add_l(x, y float64) *ContentCreator {
	return cc.add("l", makeFloats(x, y)...)
}

// Add_S appends 'S' operand to the content stream: Stroke the path.
func (cc *ContentCreator) Add_S() *ContentCreator {
	return cc.add("S")
}

// Add_RG appends 'RG' operand to the content stream: Set the stroking colorspace to DeviceRGB
// and sets the r,g,b colors (0-1 each).
func (cc *ContentCreator) Add_RG(r, g, b float64) *ContentCreator {
	return cc.add("RG", makeFloats(r, g, b)...)
}

// Text operators.

// Add_BT appends 'BT' operand to the content stream: Begin text.
func (cc *ContentCreator) Add_BT() *ContentCreator {
	return cc.add("BT")
}

// Add_ET appends 'ET' operand to the content stream: End text.
func (cc *ContentCreator) Add_ET() *ContentCreator {
	return cc.add("ET")
}

// Add_Tf appends 'Tf' operand to the content stream: Set font and font size specified by font
// resource `fontName` and `fontSize`.
func (cc *ContentCreator) Add_Tf(fontName core.PdfObjectName, fontSize float64) *ContentCreator {
	return cc.add("Tf", core.MakeName(string(fontName)), core.MakeFloat(fontSize))
}

// Add_Td appends 'Td' operand to the content stream: Move to start of next line with offset
// (`tx`, `ty`).
func (cc *ContentCreator) Add_Td(tx, ty float64) *ContentCreator {
	return cc.add("Td", makeFloats(tx, ty)...)
}

// Add_Tj appends 'Tj' operand to the content stream: Show a text string.
func (cc *ContentCreator) Add_Tj(textstr core.PdfObjectString) *ContentCreator {
	return cc.add("Tj", &textstr)
}

// Add_TJ appends 'TJ' operand to the content stream: Show one or more text string. Array of
// numbers (displacement) and strings.
func (cc *ContentCreator) Add_TJ(vals ...core.PdfObject) *ContentCreator {
	return cc.add("TJ", core.MakeArray(vals...))
}

func makeFloats(vals ...float64) []core.PdfObject {
	objs := make([]core.PdfObject, 0, len(vals))
	for _, v := range vals {
		objs = append(objs, core.MakeFloat(v))
	}
	return objs
}
