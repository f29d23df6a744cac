/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/unidoc/unifont/common"
	"github.com/unidoc/unifont/pdf/core"
)

// ContentStreamParser represents a content stream parser for parsing content streams in PDFs.
// CMap programs share the syntax and can be parsed too.
type ContentStreamParser struct {
	reader *bufio.Reader
}

// NewContentStreamParser creates a new instance of the content stream parser from an input
// content stream string.
func NewContentStreamParser(contentStr string) *ContentStreamParser {
	return &ContentStreamParser{reader: bufio.NewReader(strings.NewReader(contentStr))}
}

// Parse parses all commands in content stream, returning a list of operation data. Operands
// collected before an operator become its parameters.
func (csp *ContentStreamParser) Parse() (*ContentStreamOperations, error) {
	operations := ContentStreamOperations{}
	var params []core.PdfObject

	for {
		obj, operand, err := csp.parseObject()
		if err == io.EOF {
			break
		}
		if err != nil {
			common.Log.Debug("ERROR: content stream parsing: %v", err)
			return &operations, err
		}
		if operand == "" {
			params = append(params, obj)
			continue
		}
		operations = append(operations, &ContentStreamOperation{Operand: operand, Params: params})
		params = nil
	}
	if len(params) > 0 {
		common.Log.Debug("content stream ends with %d dangling operands", len(params))
	}
	return &operations, nil
}

func isWhiteSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\r' || b == '\t' || b == '\f' || b == 0
}

func isDelimiter(b byte) bool {
	return strings.IndexByte("()<>[]{}/%", b) >= 0
}

func (csp *ContentStreamParser) skipSpacesAndComments() error {
	for {
		b, err := csp.reader.Peek(1)
		if err != nil {
			return err
		}
		switch {
		case isWhiteSpace(b[0]):
			csp.reader.ReadByte()
		case b[0] == '%':
			if _, err := csp.reader.ReadBytes('\n'); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// parseObject reads the next object. Operators are returned as `operand` with a nil object.
func (csp *ContentStreamParser) parseObject() (obj core.PdfObject, operand string, err error) {
	if err = csp.skipSpacesAndComments(); err != nil {
		return nil, "", err
	}
	bb, err := csp.reader.Peek(2)
	if err != nil && len(bb) == 0 {
		return nil, "", err
	}

	switch {
	case bb[0] == '/':
		obj, err = csp.parseName()
	case bb[0] == '(':
		obj, err = csp.parseString()
	case bb[0] == '<' && len(bb) == 2 && bb[1] == '<':
		obj, err = csp.parseDict()
	case bb[0] == '<':
		obj, err = csp.parseHexString()
	case bb[0] == '[':
		obj, err = csp.parseArray()
	case bb[0] == ']' || bb[0] == '>' || bb[0] == ')':
		return nil, "", fmt.Errorf("%w: unexpected %q", errInvalidOperand, bb[0])
	default:
		var token string
		token, err = csp.readToken()
		if err != nil {
			return nil, "", err
		}
		obj, operand, err = parseToken(token)
	}
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return obj, operand, err
}

// readToken reads a run of regular characters, or a single delimiter such as '{'.
func (csp *ContentStreamParser) readToken() (string, error) {
	var buf bytes.Buffer
	for {
		b, err := csp.reader.Peek(1)
		if err == io.EOF && buf.Len() > 0 {
			break
		}
		if err != nil {
			return "", err
		}
		if isWhiteSpace(b[0]) || isDelimiter(b[0]) {
			if buf.Len() == 0 {
				c, _ := csp.reader.ReadByte()
				buf.WriteByte(c)
			}
			break
		}
		c, _ := csp.reader.ReadByte()
		buf.WriteByte(c)
	}
	return buf.String(), nil
}

func parseToken(token string) (core.PdfObject, string, error) {
	switch token {
	case "true":
		return core.MakeBool(true), "", nil
	case "false":
		return core.MakeBool(false), "", nil
	case "null":
		return core.MakeNull(), "", nil
	}
	c := token[0]
	if c != '+' && c != '-' && c != '.' && (c < '0' || c > '9') {
		return nil, token, nil
	}
	if strings.ContainsAny(token, ".eE") {
		val, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, "", fmt.Errorf("%w: number %q", errRangeCheck, token)
		}
		return core.MakeFloat(val), "", nil
	}
	val, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return nil, "", fmt.Errorf("%w: number %q", errRangeCheck, token)
	}
	return core.MakeInteger(val), "", nil
}

func (csp *ContentStreamParser) parseName() (*core.PdfObjectName, error) {
	csp.reader.ReadByte()
	token, err := csp.readRegular()
	if err != nil {
		return nil, err
	}
	var name bytes.Buffer
	for i := 0; i < len(token); i++ {
		if token[i] == '#' && i+2 < len(token) {
			if decoded, err := hex.DecodeString(token[i+1 : i+3]); err == nil {
				name.Write(decoded)
				i += 2
				continue
			}
		}
		name.WriteByte(token[i])
	}
	return core.MakeName(name.String()), nil
}

// readRegular reads regular characters up to the next white space or delimiter.
func (csp *ContentStreamParser) readRegular() (string, error) {
	var buf bytes.Buffer
	for {
		b, err := csp.reader.Peek(1)
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if isWhiteSpace(b[0]) || isDelimiter(b[0]) {
			break
		}
		c, _ := csp.reader.ReadByte()
		buf.WriteByte(c)
	}
	return buf.String(), nil
}

// parseString reads a literal string with balanced parentheses and escape sequences.
func (csp *ContentStreamParser) parseString() (*core.PdfObjectString, error) {
	csp.reader.ReadByte()

	var buf bytes.Buffer
	depth := 1
	for {
		c, err := csp.reader.ReadByte()
		if err != nil {
			return nil, err
		}
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return core.MakeString(buf.String()), nil
			}
		case '\\':
			c, err = csp.reader.ReadByte()
			if err != nil {
				return nil, err
			}
			switch c {
			case 'n':
				c = '\n'
			case 'r':
				c = '\r'
			case 't':
				c = '\t'
			case 'b':
				c = '\b'
			case 'f':
				c = '\f'
			case '\n':
				continue
			case '\r':
				if b, _ := csp.reader.Peek(1); len(b) == 1 && b[0] == '\n' {
					csp.reader.ReadByte()
				}
				continue
			}
			if c >= '0' && c <= '7' {
				code := []byte{c}
				for len(code) < 3 {
					b, _ := csp.reader.Peek(1)
					if len(b) == 0 || b[0] < '0' || b[0] > '7' {
						break
					}
					csp.reader.ReadByte()
					code = append(code, b[0])
				}
				val, _ := strconv.ParseUint(string(code), 8, 32)
				c = byte(val)
			}
		}
		buf.WriteByte(c)
	}
}

// parseHexString reads a hex string. White space is ignored and an odd final digit is padded
// with 0.
func (csp *ContentStreamParser) parseHexString() (*core.PdfObjectString, error) {
	csp.reader.ReadByte()

	var digits []byte
	for {
		c, err := csp.reader.ReadByte()
		if err != nil {
			return nil, err
		}
		if c == '>' {
			break
		}
		if isWhiteSpace(c) {
			continue
		}
		digits = append(digits, c)
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	decoded, err := hex.DecodeString(string(digits))
	if err != nil {
		return nil, fmt.Errorf("%w: hex string <%s>", errRangeCheck, digits)
	}
	return core.MakeHexString(string(decoded)), nil
}

func (csp *ContentStreamParser) parseArray() (*core.PdfObjectArray, error) {
	csp.reader.ReadByte()

	arr := core.MakeArray()
	for {
		if err := csp.skipSpacesAndComments(); err != nil {
			return nil, err
		}
		b, err := csp.reader.Peek(1)
		if err != nil {
			return nil, err
		}
		if b[0] == ']' {
			csp.reader.ReadByte()
			return arr, nil
		}
		obj, operand, err := csp.parseObject()
		if err != nil {
			return nil, err
		}
		if operand != "" {
			return nil, fmt.Errorf("%w: operator %s in array", errInvalidOperand, operand)
		}
		arr.Append(obj)
	}
}

func (csp *ContentStreamParser) parseDict() (*core.PdfObjectDictionary, error) {
	csp.reader.Discard(2)

	dict := core.MakeDict()
	for {
		if err := csp.skipSpacesAndComments(); err != nil {
			return nil, err
		}
		bb, err := csp.reader.Peek(2)
		if err != nil && len(bb) == 0 {
			return nil, err
		}
		if len(bb) == 2 && bb[0] == '>' && bb[1] == '>' {
			csp.reader.Discard(2)
			return dict, nil
		}

		key, _, err := csp.parseObject()
		if err != nil {
			return nil, err
		}
		name, ok := core.GetName(key)
		if !ok {
			return nil, fmt.Errorf("%w: dictionary key %v", errTypeCheck, key)
		}
		val, operand, err := csp.parseObject()
		if err != nil {
			return nil, err
		}
		if operand != "" {
			return nil, fmt.Errorf("%w: operator %s in dictionary", errInvalidOperand, operand)
		}
		dict.Set(*name, val)
	}
}
