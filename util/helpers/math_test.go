package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundUp(t *testing.T) {
	require.Equal(t, 0, RoundUp(0, 4))
	require.Equal(t, 4, RoundUp(1, 4))
	require.Equal(t, 4, RoundUp(3, 4))
	require.Equal(t, 4, RoundUp(4, 4))
	require.Equal(t, 8, RoundUp(5, 4))
	require.Equal(t, 100, RoundUp(100, 4))

	require.Equal(t, 4096, RoundUp(1, 4096))
	require.Equal(t, 4096, RoundUp(4096, 4096))
	require.Equal(t, 8192, RoundUp(4097, 4096))

	require.Equal(t, int32(104), RoundUp(int32(101), 4))
	require.Equal(t, uint64(16), RoundUp(uint64(9), 8))
}
