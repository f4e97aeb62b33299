package encoding

import (
	prot "github.com/harlequix/hamming/protocol"
)

type Status int

const (
	// Clean blocks had no erasures and a zero syndrome.
	Clean Status = iota
	// Corrected blocks had no erasures and one flipped bit.
	Corrected
	// Unique blocks had erasures with exactly one consistent codeword.
	Unique
	// Ambiguous blocks had erasures with several consistent codewords.
	Ambiguous
	// NoSolution blocks had erasures and no consistent codeword.
	NoSolution
)

func (s Status) String() string {
	switch s {
	case Clean:
		return "clean"
	case Corrected:
		return "corrected"
	case Unique:
		return "unique"
	case Ambiguous:
		return "ambiguous"
	case NoSolution:
		return "no-solution"
	default:
		return "unknown"
	}
}

func (s Status) Resolved() bool {
	return s == Clean || s == Corrected || s == Unique
}

// Result is the outcome of decoding one block. Nibble is what leaves the
// codec: erased data positions of an unresolved block stay ERASED.
type Result struct {
	Status     Status
	Nibble     prot.Nibble
	Received   prot.Block
	Codeword   prot.Block
	Erasures   int
	Candidates int
	// Position is the 1-based position flipped by single-error correction.
	Position int
}
