package main

import (
	"errors"
	"testing"

	"github.com/plus3/tetramino/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigExitCode(t *testing.T) {
	noEnv := func(string) (string, bool) { return "", false }

	for _, arg := range []string{"-h", "-help", "--help"} {
		_, err := config.Parse("tetramino", []string{arg}, noEnv)
		require.Error(t, err)
		assert.Equal(t, 0, configExitCode(err), arg)
	}

	_, err := config.Parse("tetramino", []string{"-volume", "3"}, noEnv)
	require.Error(t, err)
	assert.Equal(t, 2, configExitCode(err))

	assert.Equal(t, 2, configExitCode(errors.New("bad flag")))
}
