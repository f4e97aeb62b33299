package backends

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

const digestLen int = 20

// Digest keys a cSHAKE256 hash of the message bits with the shared secret.
func Digest(secret string, message string) []byte {
	hasher := sha3.NewCShake256(nil, []byte(secret))
	hasher.Write([]byte(message))
	out := make([]byte, digestLen)
	hasher.Read(out)
	return out
}

func VerifyDigest(secret string, message string, digestHex string) bool {
	expected, err := hex.DecodeString(digestHex)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(Digest(secret, message), expected) == 1
}
