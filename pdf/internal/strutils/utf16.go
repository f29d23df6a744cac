/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package strutils converts between Go strings and the UTF-16BE byte strings used by font name
// tables and PDF text strings.
package strutils

import (
	"golang.org/x/text/encoding/unicode"

	"github.com/unidoc/unifont/common"
)

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// UTF16ToString decodes the UTF-16BE encoded byte slice `b` to a unicode go string. Invalid
// sequences decode to U+FFFD and a trailing odd byte is dropped.
func UTF16ToString(b []byte) string {
	if len(b)%2 != 0 {
		common.Log.Debug("UTF-16 data with odd length %d", len(b))
		b = b[:len(b)-1]
	}
	decoded, err := utf16BE.NewDecoder().Bytes(b)
	if err != nil {
		common.Log.Debug("ERROR: UTF-16 decoding: %v", err)
		return ""
	}
	return string(decoded)
}

// StringToUTF16 encodes `s` as UTF-16BE without byte order mark. Code points outside the BMP are
// written as surrogate pairs.
func StringToUTF16(s string) []byte {
	encoded, err := utf16BE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		common.Log.Debug("ERROR: UTF-16 encoding: %v", err)
		return nil
	}
	return encoded
}

// RuneToUTF16 returns the UTF-16BE encoding of `r`: 2 bytes for the BMP, 4 for a surrogate pair.
func RuneToUTF16(r rune) []byte {
	return StringToUTF16(string(r))
}
