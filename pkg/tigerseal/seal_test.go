package tigerseal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSealDeterministicAndKeyed(t *testing.T) {
	data := []byte("some serialized state")
	key1 := []byte{1, 2, 3, 4}
	key2 := []byte{5, 6, 7, 8}

	out1, err := Seal(32, data, key1)
	require.NoError(t, err)
	out2, err := Seal(32, data, key1)
	require.NoError(t, err)
	require.Equal(t, out1, out2)

	out3, err := Seal(32, data, key2)
	require.NoError(t, err)
	require.NotEqual(t, out1, out3)
}

func TestSealRespectsOutputLength(t *testing.T) {
	for _, n := range []int{4, 16, 32} {
		out, err := Seal(n, []byte("data"), nil)
		require.NoError(t, err)
		require.Len(t, out, n)
	}
}

func TestSealRejectsOversizeOutput(t *testing.T) {
	_, err := Seal(MaxSealSize+1, []byte("data"), nil)
	require.Error(t, err)
}

func TestStretchDeterministicAndSaltDependent(t *testing.T) {
	out1 := Stretch(16, []byte("password"), []byte("salt-a"))
	out2 := Stretch(16, []byte("password"), []byte("salt-a"))
	require.Equal(t, out1, out2)

	out3 := Stretch(16, []byte("password"), []byte("salt-b"))
	require.NotEqual(t, out1, out3)
}

func TestStretchRespectsOutputLength(t *testing.T) {
	for _, n := range []int{4, 16, 32, 64} {
		out := Stretch(n, []byte("password"), []byte("salt"))
		require.Len(t, out, n)
	}
}
