package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWipeBytes_ZeroesContents(t *testing.T) {
	b := []byte("secret")
	WipeBytes(b)
	for i, v := range b {
		require.Zero(t, v, "byte %d not wiped", i)
	}
}

func TestWipeBytes_NilIsSafe(t *testing.T) {
	assert.NotPanics(t, func() { WipeBytes(nil) })
}
