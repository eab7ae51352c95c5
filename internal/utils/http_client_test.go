package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	client := NewHTTPClient()

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, UserAgent, client.Header.Get("User-Agent"))
}

func TestNewHTTPClient_Independent(t *testing.T) {
	a, b := NewHTTPClient(), NewHTTPClient()

	a.SetHeader("X-Only-A", "1")

	assert.NotSame(t, a.Client, b.Client)
	assert.Empty(t, b.Header.Get("X-Only-A"))
}
