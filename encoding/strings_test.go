package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextToBits(t *testing.T) {
	require.Equal(t, "01000001", TextToBits("A"))
	require.Equal(t, "0100100001101001", TextToBits("Hi"))
	require.Equal(t, "", TextToBits(""))
}

func TestBitsToText(t *testing.T) {
	require.Equal(t, "Hi", BitsToText(TextToBits("Hi")))
	require.Equal(t, "H_", BitsToText("01001000011?1001"))
	require.Equal(t, "A", BitsToText("010000011"))
}
