package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBody_Empty(t *testing.T) {
	body, err := EncodeBody(nil)
	require.NoError(t, err)

	assert.Equal(t, "{}", string(body))
}

func TestEncodeBody_FlatStringObject(t *testing.T) {
	body, err := EncodeBody([]KVPair{
		{Key: "name", Value: "joe"},
		{Key: "age", Value: "5"},
	})
	require.NoError(t, err)

	// numeric-looking values stay strings
	assert.JSONEq(t, `{"name":"joe","age":"5"}`, string(body))
}

func TestEncodeBody_LastDuplicateWins(t *testing.T) {
	body, err := EncodeBody([]KVPair{
		{Key: "a", Value: "first"},
		{Key: "b", Value: "kept"},
		{Key: "a", Value: "last"},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"a":"last","b":"kept"}`, string(body))
}

func TestEncodeBody_ValueWithEquals(t *testing.T) {
	pair, err := ParseKVPair("expr=1+1=2")
	require.NoError(t, err)

	body, err := EncodeBody([]KVPair{pair})
	require.NoError(t, err)

	assert.JSONEq(t, `{"expr":"1+1=2"}`, string(body))
}
