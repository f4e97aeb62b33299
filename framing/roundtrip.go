package framing

import (
	"github.com/harlequix/hamming/encoding"
	prot "github.com/harlequix/hamming/protocol"
)

// Transmitter carries a codeword across a channel that may erase symbols.
type Transmitter interface {
	Transmit(codeword []prot.Symbol) []prot.Symbol
}

type Report struct {
	Message  string
	Codeword string
	Received string
	Decoded  string
	OK       bool
	Results  []encoding.Result
}

// Unresolved counts blocks that could not be pinned to one codeword.
func (r *Report) Unresolved() int {
	cnt := 0
	for _, res := range r.Results {
		if !res.Status.Resolved() {
			cnt++
		}
	}
	return cnt
}

// Finish decodes received for a message of messageLen bits, truncates the
// padding and compares against message when it is known. Every call decodes
// with a fresh Decoder reporting to metrics.
func Finish(message string, messageLen int, codeword string, received []prot.Symbol, metrics *Metrics) (*Report, error) {
	if err := CheckReceived(len(received), messageLen); err != nil {
		return nil, err
	}
	decoder := NewDecoder(metrics)
	for _, sym := range received {
		decoder.Push(sym)
	}
	if err := decoder.Close(); err != nil {
		return nil, err
	}
	decoded := prot.Format(Truncate(decoder.Decoded(), messageLen))
	return &Report{
		Message:  message,
		Codeword: codeword,
		Received: prot.Format(received),
		Decoded:  decoded,
		OK:       message != "" && decoded == message,
		Results:  decoder.Results(),
	}, nil
}

// RoundTrip encodes message, sends it through ch and decodes what arrives.
func RoundTrip(message string, ch Transmitter, metrics *Metrics) (*Report, error) {
	bits, err := prot.ParseBits(message)
	if err != nil {
		return nil, err
	}
	codeword := EncodeMessage(bits)
	sent := prot.Format(codeword)
	received := ch.Transmit(codeword)
	return Finish(message, len(bits), sent, received, metrics)
}
