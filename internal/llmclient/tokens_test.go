package llmclient

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountTokens(t *testing.T) {
	assert.Equal(t, 0, CountTokens(""))
	assert.Equal(t, 0, CountTokens("   \n"))
	assert.Equal(t, 1, CountTokens("hi"))
	assert.Equal(t, 5, CountTokens("a b c d e"))
	assert.Equal(t, 25, CountTokens(strings.Repeat("x", 100)))
}
