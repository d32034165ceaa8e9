package mpt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreprocessConcrete(t *testing.T) {
	tp, err := Preprocess(
		[][]byte{{0xAA, 0xBB}, {0xCC}},
		[]byte{0x01, 0x02},
		[]byte{0x01},
		3, 4, 2,
	)
	require.NoError(t, err)

	require.Equal(t, 2, tp.Depth)
	require.Equal(t, []byte{0x01, 0x02}, tp.Key)
	require.Equal(t, []byte{
		0xAA, 0xBB, 0x00, 0x00,
		0xCC, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}, tp.Proof)
	require.Equal(t, []byte{0x00, 0x01}, tp.Value)
}

func TestPreprocessDimensions(t *testing.T) {
	const (
		maxDepth    = 6
		maxNodeLen  = 9
		maxValueLen = 5
	)

	// Output dimensions are fixed no matter the real depth.
	for depth := 0; depth <= maxDepth; depth++ {
		nodes := make([][]byte, depth)
		for i := range nodes {
			nodes[i] = bytes.Repeat([]byte{byte(i + 1)}, i+1)
		}

		tp, err := Preprocess(nodes, []byte{0xFF}, []byte{0x42}, maxDepth, maxNodeLen, maxValueLen)
		require.NoError(t, err)
		require.Len(t, tp.Proof, maxDepth*maxNodeLen)
		require.Len(t, tp.Value, maxValueLen)
		require.Equal(t, depth, tp.Depth)

		// Slots beyond the real depth stay all zero.
		require.Equal(t,
			make([]byte, (maxDepth-depth)*maxNodeLen),
			tp.Proof[depth*maxNodeLen:])
	}
}

func TestPreprocessDepthBoundary(t *testing.T) {
	node := []byte{0x01}

	_, err := Preprocess([][]byte{node, node}, nil, nil, 2, 4, 1)
	require.NoError(t, err)

	_, err = Preprocess([][]byte{node, node, node}, nil, nil, 2, 4, 1)
	var de *DepthExceededError
	require.ErrorAs(t, err, &de)
	require.Equal(t, 3, de.Depth)
	require.Equal(t, 2, de.Max)
}

func TestPreprocessNodeOverflow(t *testing.T) {
	full := bytes.Repeat([]byte{0x7F}, 4)

	// A node of exactly maxNodeLen occupies its whole slot unpadded.
	tp, err := Preprocess([][]byte{full}, nil, nil, 2, 4, 1)
	require.NoError(t, err)
	require.Equal(t, full, tp.Proof[:4])

	_, err = Preprocess([][]byte{{0x01}, append(full, 0x7F)}, nil, nil, 2, 4, 1)
	var ne *NodeLengthExceededError
	require.ErrorAs(t, err, &ne)
	require.Equal(t, 1, ne.Index)
	require.Equal(t, 5, ne.Len)
	require.Equal(t, 4, ne.Max)
}

func TestPreprocessValueOverflow(t *testing.T) {
	_, err := Preprocess(nil, nil, []byte{0x01, 0x02, 0x03}, 1, 4, 2)
	var de *DimensionExceededError
	require.ErrorAs(t, err, &de)
	require.Equal(t, 3, de.Len)
	require.Equal(t, 2, de.Max)
}
