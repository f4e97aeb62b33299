package protocol

// Block is one codeword laid out as [p1, p2, d1, p4, d2, d3, d4].
type Block [BlockLen]Symbol

// Nibble carries [d1, d2, d3, d4].
type Nibble [NibbleLen]Symbol

// DataPositions are the 0-based block positions of d1..d4.
var DataPositions = [NibbleLen]int{2, 4, 5, 6}

// ParityPositions are the 0-based block positions of p1, p2 and p4.
var ParityPositions = [3]int{0, 1, 3}

func NewBlock(symbols []Symbol) Block {
	var block Block
	for i := range block {
		block[i] = ERASED
	}
	copy(block[:], symbols)
	return block
}

func NewNibble(symbols []Symbol) Nibble {
	var nibble Nibble
	for i := range nibble {
		nibble[i] = ZERO
	}
	copy(nibble[:], symbols)
	return nibble
}

func (b Block) Erasures() []int {
	out := []int{}
	for pos, val := range b {
		if val.IsErased() {
			out = append(out, pos)
		}
	}
	return out
}

func (b Block) Ready() bool {
	for _, val := range b {
		if !val.IsBit() {
			return false
		}
	}
	return true
}

func (b Block) Data() Nibble {
	var nibble Nibble
	for i, pos := range DataPositions {
		nibble[i] = b[pos]
	}
	return nibble
}

func (b Block) String() string {
	return Format(b[:])
}

func (n Nibble) Ready() bool {
	for _, val := range n {
		if !val.IsBit() {
			return false
		}
	}
	return true
}

func (n Nibble) String() string {
	return Format(n[:])
}
