/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/unidoc/unifont/common"
)

// Stream encoding filter names.
const (
	StreamEncodingFilterNameFlate = "FlateDecode"
	StreamEncodingFilterNameRaw   = "Raw"
)

// StreamEncoder represents the interface for all PDF stream encoders.
type StreamEncoder interface {
	GetFilterName() string
	MakeStreamDict() *PdfObjectDictionary

	EncodeBytes(data []byte) ([]byte, error)
	DecodeBytes(encoded []byte) ([]byte, error)
}

// RawEncoder implements Raw encoder/decoder (no encoding, pass through).
type RawEncoder struct{}

// NewRawEncoder returns a new instace of RawEncoder.
func NewRawEncoder() *RawEncoder {
	return &RawEncoder{}
}

// GetFilterName returns the name of the encoding filter.
func (enc *RawEncoder) GetFilterName() string {
	return StreamEncodingFilterNameRaw
}

// MakeStreamDict makes a new stream dictionary. Raw streams carry no Filter entry.
func (enc *RawEncoder) MakeStreamDict() *PdfObjectDictionary {
	return MakeDict()
}

// EncodeBytes returns the passed in slice of bytes.
func (enc *RawEncoder) EncodeBytes(data []byte) ([]byte, error) {
	return data, nil
}

// DecodeBytes returns the passed in slice of bytes.
func (enc *RawEncoder) DecodeBytes(encoded []byte) ([]byte, error) {
	return encoded, nil
}

// FlateEncoder represents Flate encoding.
type FlateEncoder struct{}

// NewFlateEncoder makes a new flate encoder with default parameters.
func NewFlateEncoder() *FlateEncoder {
	return &FlateEncoder{}
}

// GetFilterName returns the name of the encoding filter.
func (enc *FlateEncoder) GetFilterName() string {
	return StreamEncodingFilterNameFlate
}

// MakeStreamDict makes a new instance of an encoding dictionary for a stream object.
func (enc *FlateEncoder) MakeStreamDict() *PdfObjectDictionary {
	dict := MakeDict()
	dict.Set("Filter", MakeName(enc.GetFilterName()))
	return dict
}

// EncodeBytes encodes a bytes array and return the encoded value based on the encoder parameters.
func (enc *FlateEncoder) EncodeBytes(data []byte) ([]byte, error) {
	var b bytes.Buffer
	w := zlib.NewWriter(&b)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// DecodeBytes decodes a slice of bytes of flate encoded data and returns the result.
func (enc *FlateEncoder) DecodeBytes(encoded []byte) ([]byte, error) {
	common.Log.Trace("FlateDecode bytes")
	if len(encoded) == 0 {
		common.Log.Debug("ERROR: empty Flate encoded buffer. Returning empty byte slice.")
		return []byte{}, nil
	}

	r, err := zlib.NewReader(bytes.NewReader(encoded))
	if err != nil {
		common.Log.Debug("Decoding error %v", err)
		return nil, err
	}
	defer r.Close()

	var out bytes.Buffer
	if _, err := io.Copy(&out, r); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// MakeStream creates a PdfObjectStream with specified contents and encoding. If encoding is nil,
// then raw encoding will be used (i.e. no encoding applied).
func MakeStream(contents []byte, encoder StreamEncoder) (*PdfObjectStream, error) {
	stream := &PdfObjectStream{}

	if encoder == nil {
		encoder = NewRawEncoder()
	}

	stream.PdfObjectDictionary = encoder.MakeStreamDict()

	encoded, err := encoder.EncodeBytes(contents)
	if err != nil {
		return nil, err
	}
	stream.PdfObjectDictionary.Set("Length", MakeInteger(int64(len(encoded))))

	stream.Stream = encoded
	return stream, nil
}

// DecodeStream decodes the stream data according to its Filter entry.
func DecodeStream(stream *PdfObjectStream) ([]byte, error) {
	if stream == nil {
		return nil, ErrNoData
	}
	filter, ok := GetName(stream.Get("Filter"))
	if !ok || filter == nil {
		return stream.Stream, nil
	}
	switch string(*filter) {
	case StreamEncodingFilterNameFlate:
		return NewFlateEncoder().DecodeBytes(stream.Stream)
	}
	common.Log.Debug("ERROR: unsupported filter %s", *filter)
	return nil, ErrTypeError
}
