//go:build unit

package referral

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCode(t *testing.T) {
	seen := make(map[string]struct{})

	for range 100 {
		code := NewCode()
		assert.Len(t, code, codeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(alphanumeric, r), "unexpected character %q", r)
		}
		seen[code] = struct{}{}
	}

	// 100 draws from a 36^8 space colliding down to a handful would mean the
	// generator is broken.
	assert.Greater(t, len(seen), 90)
}
