package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShareTokenIsOpaqueAndUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token, err := GenerateShareToken()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(token), 32)
		assert.False(t, seen[token], "token collision")
		seen[token] = true
	}
}

func TestGenerateCodeFormat(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	code, err := GenerateCode("GRP", now)
	require.NoError(t, err)

	parts := strings.Split(code, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "GRP", parts[0])
	assert.Equal(t, "20240601", parts[1])
	assert.Len(t, parts[2], 6)
	assert.NotContains(t, parts[2], "0")
	assert.NotContains(t, parts[2], "O")
}
