/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"fmt"
	"io"

	"github.com/unidoc/unifont/common"
)

// headChecksumAdjustment is the offset of checksumAdjustment in the head table.
const headChecksumAdjustment = 8

// validate checks the table checksums of `f` and the whole-file checksum stored in head against
// the data in `r`. The checksumAdjustment field counts as zero in both sums.
func (f *font) validate(r *byteReader) error {
	if f.trec == nil || f.head == nil {
		return errRequiredField
	}
	headRec, ok := f.trec.trMap["head"]
	if !ok || headRec.length < headChecksumAdjustment+4 {
		return errRequiredField
	}

	if err := r.Seek(0); err != nil {
		return err
	}
	data, err := io.ReadAll(r.reader)
	if err != nil {
		return err
	}

	adj := int(headRec.offset) + headChecksumAdjustment
	if adj+4 > len(data) {
		return errRangeCheck
	}
	copy(data[adj:adj+4], []byte{0, 0, 0, 0})

	for _, tr := range f.trec.list {
		end := int64(tr.offset) + int64(tr.length)
		if end > int64(len(data)) {
			return errRangeCheck
		}
		checksum := tableChecksum(data[tr.offset:end])
		common.Log.Trace("%s: offset %d, length %d, checksum 0x%08X", tr.tableTag, tr.offset, tr.length,
			checksum)
		if checksum != tr.checksum {
			return fmt.Errorf("%w: table %s has 0x%08X, record 0x%08X", ErrChecksum, tr.tableTag,
				checksum, tr.checksum)
		}
	}

	if want := 0xB1B0AFBA - tableChecksum(data); f.head.checksumAdjustment != want {
		return fmt.Errorf("%w: checksumAdjustment 0x%08X, want 0x%08X", ErrChecksum,
			f.head.checksumAdjustment, want)
	}
	return nil
}
