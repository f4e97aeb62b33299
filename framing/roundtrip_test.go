package framing

import (
	"testing"

	"github.com/harlequix/hamming/channel"
	prot "github.com/harlequix/hamming/protocol"
	"github.com/harlequix/hamming/encoding"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type eraseAt struct {
	positions []int
}

func (e eraseAt) Transmit(codeword []prot.Symbol) []prot.Symbol {
	out := channel.Lossless{}.Transmit(codeword)
	for _, pos := range e.positions {
		out[pos] = prot.ERASED
	}
	return out
}

type dropLast struct{}

func (dropLast) Transmit(codeword []prot.Symbol) []prot.Symbol {
	return codeword[:len(codeword)-1]
}

func TestRoundTripLossless(t *testing.T) {
	report, err := RoundTrip("10110", channel.Lossless{}, nil)
	require.Nil(t, err)
	require.True(t, report.OK)
	require.Equal(t, "01100110000000", report.Codeword)
	require.Equal(t, report.Codeword, report.Received)
	require.Equal(t, "10110", report.Decoded)
	require.Equal(t, 0, report.Unresolved())
}

func TestRoundTripErasures(t *testing.T) {
	// two erasures per block always resolve
	report, err := RoundTrip("1011001", eraseAt{[]int{0, 6, 9, 13}}, nil)
	require.Nil(t, err)
	require.True(t, report.OK)
	require.Equal(t, "1011001", report.Decoded)
	require.Equal(t, "?11001?"+"01?101?", report.Received)
	require.Equal(t, "0110011"+"0101010", report.Codeword)
}

func TestRoundTripAmbiguous(t *testing.T) {
	report, err := RoundTrip("1011", eraseAt{[]int{0, 1, 2}}, nil)
	require.Nil(t, err)
	require.False(t, report.OK)
	require.Equal(t, "?011", report.Decoded)
	require.Equal(t, 1, report.Unresolved())
}

func TestRoundTripLengthMismatch(t *testing.T) {
	_, err := RoundTrip("1011", dropLast{}, nil)
	require.True(t, errors.Is(err, ErrLength))

	_, err = RoundTrip("", channel.Lossless{}, nil)
	require.True(t, errors.Is(err, ErrLength))

	_, err = RoundTrip("12", channel.Lossless{}, nil)
	require.True(t, errors.Is(err, prot.ErrInvalidSymbol))
}

func TestFinishSharedMetrics(t *testing.T) {
	metrics := NewMetrics(nil, "test", "finish")
	zero, err := prot.ParseSymbols("0000000")
	require.Nil(t, err)
	first, err := Finish("", 4, "0000000", zero, metrics)
	require.Nil(t, err)
	require.Equal(t, "0000", first.Decoded)

	codeword, err := prot.ParseSymbols("0110011")
	require.Nil(t, err)
	second, err := Finish("1011", 4, "0110011", codeword, metrics)
	require.Nil(t, err)
	require.True(t, second.OK)
	require.Equal(t, "1011", second.Decoded)
	require.Len(t, second.Results, 1)
	require.Equal(t, 2.0, testutil.ToFloat64(metrics.blocks.WithLabelValues(encoding.Clean.String())))
}

func TestRoundTripRandomChannel(t *testing.T) {
	ch, err := channel.New(channel.Config{ErasureProbability: 0.05, Seed: 11})
	require.Nil(t, err)
	message := channel.RandomBits(ch.Rand(), 256)
	report, err := RoundTrip(message, ch, NewMetrics(nil, "test", "roundtrip"))
	require.Nil(t, err)
	require.Len(t, report.Decoded, 256)
	require.Len(t, report.Results, 64)
	if report.Unresolved() == 0 {
		require.True(t, report.OK)
	}
}
