package encoding

import (
	log "github.com/harlequix/hamming/log"
	prot "github.com/harlequix/hamming/protocol"
)

// places maps each parity check (k = 1, 2, 4) to the 0-based block positions
// it covers: every position whose 1-based index has bit k set.
var places = [3][4]int{
	{0, 2, 4, 6},
	{1, 2, 5, 6},
	{3, 4, 5, 6},
}

var logger = log.NewLogger("Hamming")

// EncodeBlock computes p1, p2 and p4 over GF(2) and lays the codeword out as
// [p1, p2, d1, p4, d2, d3, d4]. Symbols other than ONE encode as 0.
func EncodeBlock(n prot.Nibble) prot.Block {
	d1, d2, d3, d4 := n[0].Bit(), n[1].Bit(), n[2].Bit(), n[3].Bit()
	p1 := d1 ^ d2 ^ d4
	p2 := d1 ^ d3 ^ d4
	p4 := d2 ^ d3 ^ d4
	return prot.Block{
		prot.FromBit(p1),
		prot.FromBit(p2),
		prot.FromBit(d1),
		prot.FromBit(p4),
		prot.FromBit(d2),
		prot.FromBit(d3),
		prot.FromBit(d4),
	}
}

// Check is one syndrome component. Known is false when a covered position is
// erased.
type Check struct {
	Value byte
	Known bool
}

// Syndrome holds the checks for p1, p2 and p4 in that order.
type Syndrome [3]Check

func ComputeSyndrome(b prot.Block) Syndrome {
	var syn Syndrome
	for k, cover := range places {
		syn[k] = calculateParity(b, cover)
	}
	return syn
}

func calculateParity(b prot.Block, cover [4]int) Check {
	var parity byte
	for _, pos := range cover {
		if !b[pos].IsBit() {
			return Check{}
		}
		parity ^= b[pos].Bit()
	}
	return Check{Value: parity, Known: true}
}

func (s Syndrome) Determined() bool {
	return s[0].Known && s[1].Known && s[2].Known
}

// Zero reports a fully determined (0,0,0) syndrome.
func (s Syndrome) Zero() bool {
	return s.Determined() && s[0].Value == 0 && s[1].Value == 0 && s[2].Value == 0
}

// Position is the 1-based position named by s4 s2 s1, or 0 when the syndrome
// is zero or not determined.
func (s Syndrome) Position() int {
	if !s.Determined() {
		return 0
	}
	return int(s[0].Value) | int(s[1].Value)<<1 | int(s[2].Value)<<2
}

func (s Syndrome) String() string {
	out := make([]byte, 3)
	for k, check := range s {
		if check.Known {
			out[k] = byte(prot.FromBit(check.Value))
		} else {
			out[k] = byte(prot.ERASED)
		}
	}
	return string(out)
}
