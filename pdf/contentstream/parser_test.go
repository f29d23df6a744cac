/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidoc/unifont/pdf/core"
)

func TestParseRoundTrip(t *testing.T) {
	cc := NewContentCreator()
	cc.Add_q().
		Add_cm(1, 0, 0, 1, 72, 720).
		Add_BT().
		Add_Tf("F1", 12).
		Add_TJ(core.MakeHexString("\x00\x04"), core.MakeFloat(50), core.MakeHexString("\x00\x11\x00\x04")).
		Add_ET().
		Add_Q()

	ops, err := NewContentStreamParser(cc.String()).Parse()
	require.NoError(t, err)
	require.Len(t, *ops, 7)
	assert.Equal(t, cc.String(), ops.String())

	tj, err := ops.Find("TJ")
	require.NoError(t, err)
	require.Len(t, tj.Params, 1)
	arr, ok := core.GetArray(tj.Params[0])
	require.True(t, ok)
	require.Equal(t, 3, arr.Len())
	str, ok := arr.Get(2).(*core.PdfObjectString)
	require.True(t, ok)
	assert.True(t, str.IsHex())
	assert.Equal(t, []byte{0, 0x11, 0, 4}, str.Bytes())

	_, err = ops.Find("Tj")
	assert.True(t, errors.Is(err, errNotFound))
}

func TestParseObjects(t *testing.T) {
	content := `% comment
/A#20B (a\(b\)c\101\
d) <4 1 4> 3.5 -2 true null [1 [2]] << /Registry (Adobe) /Supplement 0 >> op`
	ops, err := NewContentStreamParser(content).Parse()
	require.NoError(t, err)
	require.Len(t, *ops, 1)

	op := (*ops)[0]
	assert.Equal(t, "op", op.Operand)
	require.Len(t, op.Params, 9)
	assert.Equal(t, "/A#20B", op.Params[0].WriteString())
	name, ok := core.GetName(op.Params[0])
	require.True(t, ok)
	assert.Equal(t, "A B", string(*name))
	assert.Equal(t, "a(b)cAd", op.Params[1].String())
	assert.Equal(t, "A@", op.Params[2].String())
	assert.Equal(t, "3.5", op.Params[3].WriteString())
	assert.Equal(t, "-2", op.Params[4].WriteString())
	assert.Equal(t, "true", op.Params[5].WriteString())
	assert.Equal(t, "null", op.Params[6].WriteString())
	assert.Equal(t, "[1 [2]]", op.Params[7].WriteString())
	assert.Equal(t, "<</Registry (Adobe)/Supplement 0>>", op.Params[8].WriteString())
}

func TestParseErrors(t *testing.T) {
	testcases := []struct {
		content string
		err     error
	}{
		{"[1 2 Tj] TJ", errInvalidOperand},
		{"] Tj", errInvalidOperand},
		{"<zz> Tj", errRangeCheck},
		{"1.2.3 w", errRangeCheck},
		{"<< 1 2 >> def", errTypeCheck},
		{"<< /A Q >> def", errInvalidOperand},
	}
	for _, tcase := range testcases {
		_, err := NewContentStreamParser(tcase.content).Parse()
		assert.True(t, errors.Is(err, tcase.err), "%q: %v", tcase.content, err)
	}

	// Unterminated constructs.
	for _, content := range []string{"(abc", "<0001", "[1 2", "<< /A 1"} {
		_, err := NewContentStreamParser(content).Parse()
		assert.Error(t, err, content)
	}
}
