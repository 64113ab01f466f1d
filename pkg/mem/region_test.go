package mem

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReserve(t *testing.T) {
	size := os.Getpagesize()
	region, err := Reserve(size)
	require.NoError(t, err)
	require.Len(t, []byte(region), size)

	// zero-filled and writable
	require.Equal(t, byte(0), region[0])
	require.Equal(t, byte(0), region[size-1])
	region[0] = 0xff
	require.Equal(t, byte(0xff), region[0])
}

func TestReserveInvalidSize(t *testing.T) {
	_, err := Reserve(0)
	require.Error(t, err)

	_, err = Reserve(-1)
	require.Error(t, err)
}
