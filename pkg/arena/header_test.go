package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderEncoding(t *testing.T) {
	h := &blockHeader{next: 116, size: 100, free: false}
	buf, err := h.MarshalBinary()
	require.NoError(t, err)

	// busy blocks carry the flag in the lowest bit of the size word
	require.Equal(t, uint32(101), bin.Uint32(buf[4:8]))
	require.Equal(t, uint32(116), bin.Uint32(buf[0:4]))

	got := &blockHeader{}
	require.NoError(t, got.UnmarshalBinary(buf))
	require.Equal(t, h, got)
}

func TestHeaderEncodingFree(t *testing.T) {
	h := &blockHeader{next: nilBlock, size: 4088, free: true}
	buf, err := h.MarshalBinary()
	require.NoError(t, err)

	// free blocks store the plain payload size
	require.Equal(t, uint32(4088), bin.Uint32(buf[4:8]))

	got := &blockHeader{}
	require.NoError(t, got.UnmarshalBinary(buf))
	require.Equal(t, h, got)
}

func TestHeaderZeroBytesDecodeAsFree(t *testing.T) {
	got := &blockHeader{}
	require.NoError(t, got.UnmarshalBinary(make([]byte, headerSize)))
	require.True(t, got.free)
	require.Equal(t, int32(0), got.size)
}
