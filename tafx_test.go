package tafx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntrospection(t *testing.T) {
	assert.Len(t, Functions(), 158)
	assert.Len(t, FunctionGroups(), 10)
	assert.Len(t, OutputStructs(), 13)
	assert.Equal(t, []string{"upperband", "middleband", "lowerband"}, OutputStructs()["bbands"])
	assert.NotEmpty(t, TALibVersion())

	f, err := Lookup("willr")
	require.NoError(t, err)
	assert.Equal(t, "Williams' %R", f.Description)
	assert.True(t, Library().Initialized())
	assert.NotNil(t, DefaultLog)
}

func TestLoggerFromEnv(t *testing.T) {
	t.Setenv(envLogJSON, "true")
	t.Setenv(envLogLevel, "warn")
	log, err := loggerFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "warn", log.GetLevel().String())

	t.Setenv(envLogColor, "maybe")
	_, err = loggerFromEnv()
	assert.Error(t, err)
}

func TestClose(t *testing.T) {
	require.NoError(t, Close())
	assert.False(t, Library().Initialized())
	assert.Error(t, Close())

	require.NoError(t, Library().Initialize())
}
