package encoding

import (
	prot "github.com/harlequix/hamming/protocol"
)

// DecodeBlock recovers the nibble carried by a received block.
//
// Without erasures a nonzero syndrome names the single flipped position,
// which is corrected before the data bits are extracted. With erasures every
// assignment of the erased positions is tried and only those yielding a zero
// syndrome are kept; the block resolves only if exactly one remains. The
// search is 2^|E| <= 128 syndrome evaluations, which only works because a
// block is 7 symbols long. Longer codes need to solve the parity-check system
// instead.
func DecodeBlock(b prot.Block) Result {
	erasures := b.Erasures()
	res := Result{
		Received: b,
		Codeword: b,
		Erasures: len(erasures),
	}
	if len(erasures) == 0 {
		return decodeComplete(res)
	}

	var found prot.Block
	trials := 1 << uint(len(erasures))
	for mask := 0; mask < trials; mask++ {
		candidate := b
		for j, pos := range erasures {
			candidate[pos] = prot.FromBit(byte(mask >> uint(j)))
		}
		if ComputeSyndrome(candidate).Zero() {
			res.Candidates++
			if res.Candidates == 1 {
				found = candidate
			}
		}
	}

	switch res.Candidates {
	case 0:
		res.Status = NoSolution
	case 1:
		res.Status = Unique
		res.Codeword = found
	default:
		res.Status = Ambiguous
	}
	res.Nibble = res.Codeword.Data()

	if logger.TraceEnabled() {
		logger.WithField("received", b.String()).
			WithField("status", res.Status.String()).
			WithField("candidates", res.Candidates).
			WithField("nibble", res.Nibble.String()).
			Trace("resolved erasures")
	}
	return res
}

func decodeComplete(res Result) Result {
	res.Candidates = 1
	pos := ComputeSyndrome(res.Received).Position()
	if pos == 0 {
		res.Status = Clean
	} else {
		res.Status = Corrected
		res.Position = pos
		res.Codeword[pos-1] = res.Codeword[pos-1].Flip()
		if logger.DebugEnabled() {
			logger.WithField("received", res.Received.String()).
				WithField("position", pos).
				Debug("corrected single bit error")
		}
	}
	res.Nibble = res.Codeword.Data()
	return res
}
