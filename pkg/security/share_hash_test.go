package security

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShareHash(t *testing.T) {
	urlSafe := regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	seen := make(map[string]struct{})

	for range 1000 {
		h, err := NewShareHash()
		require.NoError(t, err)

		assert.Len(t, h, ShareHashLength)
		assert.Regexp(t, urlSafe, h)

		_, dup := seen[h]
		require.False(t, dup, "duplicate hash %s", h)
		seen[h] = struct{}{}
	}
}
