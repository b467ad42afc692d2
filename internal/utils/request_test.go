package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinatePair(t *testing.T) {
	t.Run("both valid", func(t *testing.T) {
		lat, lng := ParseCoordinatePair("40.35", "-74.66")
		require.NotNil(t, lat)
		require.NotNil(t, lng)
		assert.Equal(t, 40.35, *lat)
		assert.Equal(t, -74.66, *lng)
	})

	t.Run("both empty", func(t *testing.T) {
		lat, lng := ParseCoordinatePair("", "")
		assert.Nil(t, lat)
		assert.Nil(t, lng)
	})

	// La paire est atomique: une valeur malformée invalide les deux
	t.Run("malformed lat drops both", func(t *testing.T) {
		lat, lng := ParseCoordinatePair("forty", "-74.66")
		assert.Nil(t, lat)
		assert.Nil(t, lng)
	})

	t.Run("malformed lng drops both", func(t *testing.T) {
		lat, lng := ParseCoordinatePair("40.35", "west")
		assert.Nil(t, lat)
		assert.Nil(t, lng)
	})

	t.Run("single value kept", func(t *testing.T) {
		lat, lng := ParseCoordinatePair("40.35", "")
		require.NotNil(t, lat)
		assert.Equal(t, 40.35, *lat)
		assert.Nil(t, lng)
	})
}
