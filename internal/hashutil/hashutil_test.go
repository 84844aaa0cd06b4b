package hashutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashIsDeterministic(t *testing.T) {
	require.Equal(t, Hash([]byte("alpha")), Hash([]byte("alpha")))
	require.NotEqual(t, Hash([]byte("alpha")), Hash([]byte("beta")))
}

func TestHashStringMatchesHash(t *testing.T) {
	require.Equal(t, Hash([]byte("gamma")), HashString("gamma"))
}
