package protocol

import (
	"encoding/hex"
)

const CIDLen int = 16

// CID is the QUIC connection ID a sender dials with. It is derived from the
// message digest so both ends can tie a session to the message it carries.
type CID struct {
	Field []byte
}

func NewCID(field []byte) *CID {
	internal := make([]byte, CIDLen)
	copy(internal, field)
	return &CID{
		Field: internal,
	}
}

func (c *CID) String() string {
	return hex.EncodeToString(c.Field)
}

func (c *CID) Bytes() []byte {
	return c.Field
}
