/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/unidoc/unifont/common"
)

// byteWriter encapsulates io.Writer and provides methods to write binary data as fit for truetype fonts.
// Writes are buffered until flushed. Provides methods to calculate checksum of the current buffer.
type byteWriter struct {
	w      io.Writer
	buffer bytes.Buffer
}

func newByteWriter(w io.Writer) *byteWriter {
	return &byteWriter{
		w: w,
	}
}

func (w *byteWriter) flush() error {
	_, err := w.w.Write(w.buffer.Bytes())
	if err != nil {
		return err
	}
	w.buffer.Reset()
	return nil
}

// bufferedLen returns the length of the current buffer.
func (w *byteWriter) bufferedLen() int {
	return w.buffer.Len()
}

// checksum returns the table checksum of the current buffer: the sum of its big endian uint32
// words, with the final word zero padded.
func (w *byteWriter) checksum() uint32 {
	return tableChecksum(w.buffer.Bytes())
}

func tableChecksum(data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var word [4]byte
		copy(word[:], data[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}

// writeSlice writes all values of `slice` to `w`.
func (w *byteWriter) writeSlice(slice interface{}) error {
	switch t := slice.(type) {
	case []uint8:
		w.buffer.Write(t)
	case []uint16:
		return w.write(t)
	case []int16:
		return w.write(t)
	case []offset16:
		return w.write(t)
	case []offset32:
		return w.write(t)
	default:
		common.Log.Debug("Write type check error: %T (slice)", t)
		return errTypeCheck
	}
	return nil
}

// write writes a series of fixed size values to `w` (big endian).
func (w *byteWriter) write(fields ...interface{}) error {
	for _, f := range fields {
		switch f.(type) {
		case uint8, int8, uint16, int16, uint32, int32, int64,
			fword, ufword, fixed, f2dot14, longdatetime, offset16, offset32, tag,
			[]uint16, []int16, []offset16, []offset32:
		default:
			common.Log.Debug("Write type check error: %T", f)
			return errTypeCheck
		}
		if err := binary.Write(&w.buffer, binary.BigEndian, f); err != nil {
			return err
		}
	}
	return nil
}
