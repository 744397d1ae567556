package referral

import (
	"crypto/rand"
	"math/big"
)

const (
	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 8
)

// NewCode generates an 8-character alphanumeric referral code.
func NewCode() string {
	buf := make([]byte, codeLength)
	max := big.NewInt(int64(len(alphanumeric)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken;
			// fall back to a fixed character rather than panic during signup.
			buf[i] = alphanumeric[0]
			continue
		}
		buf[i] = alphanumeric[n.Int64()]
	}
	return string(buf)
}
