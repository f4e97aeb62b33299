package protocol

import (
	"strings"

	"github.com/pkg/errors"
)

type Symbol byte

const ONE Symbol = '1'
const ZERO Symbol = '0'

// ERASED marks a position whose value the channel dropped.
const ERASED Symbol = '?'

const BlockLen int = 7
const NibbleLen int = 4

var ErrInvalidSymbol = errors.New("invalid symbol")

func FromBit(bit byte) Symbol {
	if bit&1 == 1 {
		return ONE
	}
	return ZERO
}

func (s Symbol) IsBit() bool {
	return s == ONE || s == ZERO
}

func (s Symbol) IsErased() bool {
	return s == ERASED
}

// Bit returns 1 for ONE and 0 for anything else.
func (s Symbol) Bit() byte {
	if s == ONE {
		return 1
	}
	return 0
}

func (s Symbol) Flip() Symbol {
	switch s {
	case ONE:
		return ZERO
	case ZERO:
		return ONE
	default:
		return s
	}
}

func (s Symbol) String() string {
	if s.IsBit() || s.IsErased() {
		return string(rune(s))
	}
	return "_"
}

func parse(str string, allowErased bool) ([]Symbol, error) {
	out := make([]Symbol, len(str))
	for i := 0; i < len(str); i++ {
		sym := Symbol(str[i])
		if sym.IsBit() || (allowErased && sym.IsErased()) {
			out[i] = sym
			continue
		}
		return nil, errors.Wrapf(ErrInvalidSymbol, "%q at offset %d", str[i], i)
	}
	return out, nil
}

// ParseSymbols reads a received string over the alphabet {0,1,?}.
func ParseSymbols(str string) ([]Symbol, error) {
	return parse(str, true)
}

// ParseBits reads a message over the alphabet {0,1}.
func ParseBits(str string) ([]Symbol, error) {
	return parse(str, false)
}

func Format(symbols []Symbol) string {
	var builder strings.Builder
	builder.Grow(len(symbols))
	for _, sym := range symbols {
		builder.WriteString(sym.String())
	}
	return builder.String()
}

func CountErased(symbols []Symbol) int {
	cnt := 0
	for _, sym := range symbols {
		if sym.IsErased() {
			cnt++
		}
	}
	return cnt
}
