/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/unidoc/unifont/common"
)

// byteReader encapsulates io.ReadSeeker with buffering and provides methods to read binary data as
// needed for truetype fonts. All multi-byte values are big endian.
type byteReader struct {
	rs      io.ReadSeeker
	reader  *bufio.Reader
	size    int64 // -1 if unknown.
	scratch [4]byte
}

func newByteReader(rs io.ReadSeeker) *byteReader {
	return &byteReader{
		rs:     rs,
		reader: bufio.NewReader(rs),
		size:   streamSize(rs),
	}
}

// streamSize returns the total size of `rs` and restores its position, or -1 if `rs` cannot seek.
func streamSize(rs io.ReadSeeker) int64 {
	cur, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return -1
	}
	if _, err = rs.Seek(cur, io.SeekStart); err != nil {
		return -1
	}
	return size
}

// Size returns the total size of the underlying data, or -1 if it is unknown.
func (r *byteReader) Size() int64 {
	return r.size
}

// inBounds returns true if `length` bytes at `offset` are inside the data.
func (r *byteReader) inBounds(offset, length int64) bool {
	if offset < 0 || length < 0 {
		return false
	}
	return r.size < 0 || offset+length <= r.size
}

// Offset returns current offset position of `r`.
func (r *byteReader) Offset() int64 {
	offset, _ := r.rs.Seek(0, io.SeekCurrent)
	offset -= int64(r.reader.Buffered())
	return offset
}

// Seek seeks to offset.
func (r *byteReader) Seek(offset int64) error {
	_, err := r.rs.Seek(offset, io.SeekStart)
	if err != nil {
		return err
	}
	r.reader.Reset(r.rs)
	return nil
}

// Skip skips over `n` bytes.
func (r *byteReader) Skip(n int) error {
	_, err := r.reader.Discard(n)
	return err
}

// readBytes reads `length` bytes straight from `r` into a new slice at `bp`.
func (r *byteReader) readBytes(bp *[]byte, length int) error {
	if !r.inBounds(r.Offset(), int64(length)) {
		common.Log.Debug("ERROR: %d bytes at offset %d past end of data (%d)", length, r.Offset(), r.size)
		return errRangeCheck
	}
	*bp = make([]byte, length)
	_, err := io.ReadFull(r.reader, *bp)
	return err
}

// readSlice appends `length` values read from `r` to `slice`.
func (r *byteReader) readSlice(slice interface{}, length int) error {
	if length < 0 {
		return errRangeCheck
	}
	switch t := slice.(type) {
	case *[]uint8:
		for i := 0; i < length; i++ {
			b, err := r.next(1)
			if err != nil {
				return err
			}
			*t = append(*t, b[0])
		}
	case *[]int8:
		for i := 0; i < length; i++ {
			b, err := r.next(1)
			if err != nil {
				return err
			}
			*t = append(*t, int8(b[0]))
		}
	case *[]uint16:
		for i := 0; i < length; i++ {
			val, err := r.readUint16()
			if err != nil {
				return err
			}
			*t = append(*t, val)
		}
	case *[]int16:
		for i := 0; i < length; i++ {
			val, err := r.readUint16()
			if err != nil {
				return err
			}
			*t = append(*t, int16(val))
		}
	case *[]offset16:
		for i := 0; i < length; i++ {
			val, err := r.readUint16()
			if err != nil {
				return err
			}
			*t = append(*t, offset16(val))
		}
	case *[]offset32:
		for i := 0; i < length; i++ {
			val, err := r.readUint32()
			if err != nil {
				return err
			}
			*t = append(*t, offset32(val))
		}
	default:
		common.Log.Debug("Unsupported type: %T (readSlice)", t)
		return errTypeCheck
	}
	return nil
}

// read reads a series of fields from `r`.
func (r *byteReader) read(fields ...interface{}) error {
	for _, f := range fields {
		var err error
		switch t := f.(type) {
		case *uint8:
			var b []byte
			if b, err = r.next(1); err == nil {
				*t = b[0]
			}
		case *int8:
			var b []byte
			if b, err = r.next(1); err == nil {
				*t = int8(b[0])
			}
		case *uint16:
			*t, err = r.readUint16()
		case *int16:
			var val uint16
			val, err = r.readUint16()
			*t = int16(val)
		case *fword:
			var val uint16
			val, err = r.readUint16()
			*t = fword(val)
		case *ufword:
			var val uint16
			val, err = r.readUint16()
			*t = ufword(val)
		case *f2dot14:
			var val uint16
			val, err = r.readUint16()
			*t = f2dot14(val)
		case *offset16:
			var val uint16
			val, err = r.readUint16()
			*t = offset16(val)
		case *uint32:
			*t, err = r.readUint32()
		case *fixed:
			var val uint32
			val, err = r.readUint32()
			*t = fixed(val)
		case *offset32:
			var val uint32
			val, err = r.readUint32()
			*t = offset32(val)
		case *tag:
			var b []byte
			if b, err = r.next(4); err == nil {
				copy(t[:], b)
			}
		case *longdatetime:
			var hi, lo uint32
			if hi, err = r.readUint32(); err == nil {
				lo, err = r.readUint32()
				*t = longdatetime(int64(hi)<<32 | int64(lo))
			}
		default:
			common.Log.Debug("Unsupported type: %T (read)", t)
			return errTypeCheck
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// next reads the next `n` (at most 4) bytes into the scratch buffer.
func (r *byteReader) next(n int) ([]byte, error) {
	b := r.scratch[:n]
	_, err := io.ReadFull(r.reader, b)
	return b, err
}

func (r *byteReader) readUint16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *byteReader) readUint32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}
