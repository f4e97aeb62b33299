package framing

import (
	"github.com/harlequix/hamming/encoding"
	prot "github.com/harlequix/hamming/protocol"
	"github.com/pkg/errors"
)

var ErrLength = errors.New("length mismatch or empty input")

// CodewordLen is the number of symbols EncodeMessage produces for n bits.
func CodewordLen(n int) int {
	return prot.BlockLen * ((n + prot.NibbleLen - 1) / prot.NibbleLen)
}

// EncodeMessage encodes bits four at a time, zero-padding the final group.
// The caller keeps the original length; padding is never stripped.
func EncodeMessage(bits []prot.Symbol) []prot.Symbol {
	out := make([]prot.Symbol, 0, CodewordLen(len(bits)))
	for index := 0; index < len(bits); index += prot.NibbleLen {
		end := index + prot.NibbleLen
		if end > len(bits) {
			end = len(bits)
		}
		block := encoding.EncodeBlock(prot.NewNibble(bits[index:end]))
		out = append(out, block[:]...)
	}
	return out
}

// CheckLength rejects a received stream that is empty or not a whole number
// of blocks.
func CheckLength(n int) error {
	if n == 0 || n%prot.BlockLen != 0 {
		return errors.Wrapf(ErrLength, "%d symbols is not a positive multiple of %d", n, prot.BlockLen)
	}
	return nil
}

// CheckReceived rejects a received stream whose length differs from the
// codeword length of a messageLen-bit message.
func CheckReceived(received int, messageLen int) error {
	expected := CodewordLen(messageLen)
	if received == 0 || received != expected {
		return errors.Wrapf(ErrLength, "received %d symbols, expected %d", received, expected)
	}
	return nil
}

// DecodeBlocks decodes every 7-symbol block in order.
func DecodeBlocks(symbols []prot.Symbol) ([]encoding.Result, error) {
	if err := CheckLength(len(symbols)); err != nil {
		return nil, err
	}
	results := make([]encoding.Result, len(symbols)/prot.BlockLen)
	for i := range results {
		results[i] = decodeAt(symbols, i)
	}
	return results, nil
}

func decodeAt(symbols []prot.Symbol, index int) encoding.Result {
	offset := index * prot.BlockLen
	return encoding.DecodeBlock(prot.NewBlock(symbols[offset : offset+prot.BlockLen]))
}

// DecodeStream decodes a received stream into 4 symbols per block. Blocks
// that cannot be resolved contribute ERASED data symbols; only a bad length
// fails the whole stream.
func DecodeStream(symbols []prot.Symbol) ([]prot.Symbol, error) {
	results, err := DecodeBlocks(symbols)
	if err != nil {
		return nil, err
	}
	return Nibbles(results), nil
}

// Nibbles concatenates the data symbols of results.
func Nibbles(results []encoding.Result) []prot.Symbol {
	out := make([]prot.Symbol, 0, len(results)*prot.NibbleLen)
	for _, res := range results {
		out = append(out, res.Nibble[:]...)
	}
	return out
}

// Truncate cuts decoded symbols back to the original message length.
func Truncate(decoded []prot.Symbol, n int) []prot.Symbol {
	if n < 0 || n > len(decoded) {
		return decoded
	}
	return decoded[:n]
}

// Encode is EncodeMessage over the text alphabet {0,1}.
func Encode(message string) (string, error) {
	bits, err := prot.ParseBits(message)
	if err != nil {
		return "", err
	}
	return prot.Format(EncodeMessage(bits)), nil
}

// Decode is DecodeStream over the text alphabet {0,1,?}.
func Decode(received string) (string, error) {
	symbols, err := prot.ParseSymbols(received)
	if err != nil {
		return "", err
	}
	decoded, err := DecodeStream(symbols)
	if err != nil {
		return "", err
	}
	return prot.Format(decoded), nil
}
