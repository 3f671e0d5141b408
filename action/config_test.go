package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigEnvDefaults(t *testing.T) {
	c, err := LoadConfigEnv()
	require.NoError(t, err)
	assert.True(t, c.Stackable)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("WILLOW_ACTIONS_STACKABLE", "false")
	c, err := LoadConfigEnv()
	require.NoError(t, err)
	assert.False(t, c.Stackable)
}

func TestLoadConfigEnvInvalid(t *testing.T) {
	t.Setenv("WILLOW_ACTIONS_STACKABLE", "sometimes")
	_, err := LoadConfigEnv()
	assert.ErrorContains(t, err, "parse env")
}
