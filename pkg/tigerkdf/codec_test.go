package tigerkdf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	words := []uint32{0, 1, 0xFFFFFFFF, 0x01020304, 0xDEADBEEF}
	b := toBytes(words)
	require.Len(t, b, len(words)*4)

	got, err := toWords(b)
	require.NoError(t, err)
	require.Equal(t, words, got)
}

func TestCodecBigEndian(t *testing.T) {
	b := toBytes([]uint32{0x01020304})
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, b)
}

func TestToWordsRejectsShortInput(t *testing.T) {
	_, err := toWords([]byte{1, 2, 3})
	require.Error(t, err)
}
