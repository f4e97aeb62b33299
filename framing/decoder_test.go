package framing

import (
	"testing"

	"github.com/harlequix/hamming/encoding"
	prot "github.com/harlequix/hamming/protocol"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestDecoderIncremental(t *testing.T) {
	decoder := NewDecoder(nil)
	n, err := decoder.Write([]byte("0110"))
	require.Nil(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, 4, decoder.Pending())
	require.Len(t, decoder.Decoded(), 0)

	_, err = decoder.Write([]byte("011\n0?10011\n"))
	require.Nil(t, err)
	require.Equal(t, 0, decoder.Pending())
	require.Equal(t, "10111011", prot.Format(decoder.Decoded()))
	require.Len(t, decoder.Results(), 2)
	require.Nil(t, decoder.Close())
}

func TestDecoderRejectsPartialBlock(t *testing.T) {
	decoder := NewDecoder(nil)
	_, err := decoder.Write([]byte("0110011011"))
	require.Nil(t, err)
	require.Equal(t, "1011", prot.Format(decoder.Decoded()))
	require.True(t, errors.Is(decoder.Close(), ErrLength))

	require.True(t, errors.Is(NewDecoder(nil).Close(), ErrLength))
}

func TestDecoderRejectsSymbol(t *testing.T) {
	decoder := NewDecoder(nil)
	n, err := decoder.Write([]byte("01x"))
	require.Equal(t, 2, n)
	require.True(t, errors.Is(err, prot.ErrInvalidSymbol))
}

func TestDecoderMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry, "test", "decoder")
	decoder := NewDecoder(metrics)
	_, err := decoder.Write([]byte("0110011" + "???0011" + "0?10011" + "1110001"))
	require.Nil(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(metrics.blocks.WithLabelValues(encoding.Clean.String())))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.blocks.WithLabelValues(encoding.Ambiguous.String())))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.blocks.WithLabelValues(encoding.Unique.String())))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.blocks.WithLabelValues(encoding.Corrected.String())))
	require.Equal(t, 4.0, testutil.ToFloat64(metrics.erasedSymbols))

	families, err := registry.Gather()
	require.Nil(t, err)
	require.NotEmpty(t, families)
}

func TestNilMetrics(t *testing.T) {
	require.NotPanics(t, func() {
		NewMetrics(nil, "a", "b").observe(encoding.Result{Erasures: 1})
		var m *Metrics
		m.observe(encoding.Result{})
	})
}
