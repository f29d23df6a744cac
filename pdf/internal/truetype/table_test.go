/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test unmarshalling and marshalling the offset table and table records.
func TestTableRecordsReadWrite(t *testing.T) {
	fnt := parseTestFont(t, simpleTestFont())

	assert.Equal(t, offsetTable{sfntVersion: sfntVersionTrueType, numTables: 10}, *fnt.ot)

	var tags []string
	for _, tr := range fnt.trec.list {
		tags = append(tags, tr.tableTag.String())
	}
	assert.Equal(t, []string{"cmap", "glyf", "head", "hhea", "hmtx", "kern", "loca", "maxp", "name", "post"}, tags)
	assert.True(t, fnt.trec.HasTable("kern"))
	assert.False(t, fnt.trec.HasTable("OS/2"))
	assert.Contains(t, fnt.trec.String(), "Table record 3: head")

	// Rewrite the directory in front of the original table data.
	data := simpleTestFont().build(t)
	var buf bytes.Buffer
	bw := newByteWriter(&buf)
	require.NoError(t, fnt.ot.write(bw))
	require.NoError(t, fnt.trec.write(bw))
	require.NoError(t, bw.flush())
	buf.Write(data[buf.Len():])

	br := newByteReader(bytes.NewReader(buf.Bytes()))
	ot, err := fnt.parseOffsetTable(br)
	require.NoError(t, err)
	assert.Equal(t, fnt.ot, ot)
	trs, err := fnt.parseTableRecords(br)
	require.NoError(t, err)
	assert.Equal(t, fnt.trec.list, trs.list)
}

func TestNameTable(t *testing.T) {
	fnt := parseTestFont(t, simpleTestFont())
	require.NotNil(t, fnt.name)
	require.Len(t, fnt.name.nameRecords, 1)

	assert.Equal(t, "TestSans-Regular", fnt.GetNameByID(nameIDPostScript))
	assert.Equal(t, "", fnt.GetNameByID(nameIDFamily))

	mac := nameRecord{platformID: 1, data: []byte("Caf\x8e")}
	assert.Equal(t, "Café", mac.Decoded())
	uni := nameRecord{platformID: 0, encodingID: 3, data: []byte{0, 'G', 0, 'o'}}
	assert.Equal(t, "Go", uni.Decoded())
}

func TestTableChecksum(t *testing.T) {
	assert.Equal(t, uint32(0), tableChecksum(nil))
	assert.Equal(t, uint32(0x01020304), tableChecksum([]byte{1, 2, 3, 4}))
	// Trailing bytes are zero padded.
	assert.Equal(t, uint32(0x01020304+0x05000000), tableChecksum([]byte{1, 2, 3, 4, 5}))
}

func TestTableRecordPastEnd(t *testing.T) {
	data := simpleTestFont().build(t)

	// Record of the first table (cmap): tag, checksum, offset, length.
	binary.BigEndian.PutUint32(data[12+12:], 0x40000000)
	_, err := Parse(bytes.NewReader(data))
	assert.Equal(t, errRangeCheck, err)

	data = simpleTestFont().build(t)
	binary.BigEndian.PutUint32(data[12+8:], uint32(len(data)))
	_, err = Parse(bytes.NewReader(data))
	assert.Equal(t, errRangeCheck, err)
}

func TestReadBytesBounds(t *testing.T) {
	r := newByteReader(bytes.NewReader([]byte{1, 2, 3, 4}))
	require.NoError(t, r.Skip(1))

	var b []byte
	assert.Equal(t, errRangeCheck, r.readBytes(&b, 4))
	assert.Equal(t, errRangeCheck, r.readBytes(&b, -1))
	require.NoError(t, r.readBytes(&b, 3))
	assert.Equal(t, []byte{2, 3, 4}, b)
	assert.Equal(t, int64(4), r.Size())
}
