package encoding

import (
	"bytes"
	"fmt"
	"strconv"
)

// TextToBits spells every byte of s as eight bits, most significant first.
func TextToBits(s string) string {
	var buffer bytes.Buffer
	for i := 0; i < len(s); i++ {
		fmt.Fprintf(&buffer, "%.8b", s[i])
	}
	return buffer.String()
}

// BitsToText reverses TextToBits. Bytes that still contain an unresolved
// symbol render as '_' and a trailing partial byte is dropped.
func BitsToText(received string) string {
	blockLen := 8
	var buffer bytes.Buffer
	for index := 0; index+blockLen <= len(received); index += blockLen {
		chunk := received[index : index+blockLen]
		char, err := strconv.ParseUint(chunk, 2, blockLen)
		if err != nil {
			buffer.WriteByte('_')
			continue
		}
		buffer.WriteByte(byte(char))
	}
	return buffer.String()
}
