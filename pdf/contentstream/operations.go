/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package contentstream builds and tokenizes PDF content streams.
package contentstream

import (
	"bytes"

	"github.com/unidoc/unifont/pdf/core"
)

// ContentStreamOperation represents an operation in PDF contentstream which consists of
// an operand and parameters.
type ContentStreamOperation struct {
	Params  []core.PdfObject
	Operand string
}

// ContentStreamOperations is a slice of ContentStreamOperations.
type ContentStreamOperations []*ContentStreamOperation

// Bytes converts a set of content stream operations to a content stream byte presentation,
// i.e. the kind that can be stored as a PDF stream or string format.
func (ops *ContentStreamOperations) Bytes() []byte {
	var buf bytes.Buffer

	for _, op := range *ops {
		if op == nil {
			continue
		}
		for _, param := range op.Params {
			buf.WriteString(param.WriteString())
			buf.WriteString(" ")
		}
		buf.WriteString(op.Operand + "\n")
	}

	return buf.Bytes()
}

// String returns `ops` as a string.
func (ops *ContentStreamOperations) String() string {
	return string(ops.Bytes())
}

// Find returns the first operation with operand `operand`.
func (ops ContentStreamOperations) Find(operand string) (*ContentStreamOperation, error) {
	for _, op := range ops {
		if op.Operand == operand {
			return op, nil
		}
	}
	return nil, errNotFound
}
