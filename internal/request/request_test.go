package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKVPair(t *testing.T) {
	pair, err := ParseKVPair("name=joe")
	require.NoError(t, err)

	assert.Equal(t, "name", pair.Key)
	assert.Equal(t, "joe", pair.Value)
}

func TestParseKVPair_SplitsOnFirstEquals(t *testing.T) {
	pair, err := ParseKVPair("expr=a=b=c")
	require.NoError(t, err)

	assert.Equal(t, "expr", pair.Key)
	assert.Equal(t, "a=b=c", pair.Value)
}

func TestParseKVPair_EmptyValue(t *testing.T) {
	pair, err := ParseKVPair("flag=")
	require.NoError(t, err)

	assert.Equal(t, "flag", pair.Key)
	assert.Equal(t, "", pair.Value)
}

func TestParseKVPair_NoEquals(t *testing.T) {
	_, err := ParseKVPair("nodelimiter")

	var pairErr *InvalidBodyPairError
	require.ErrorAs(t, err, &pairErr)
	assert.Equal(t, "nodelimiter", pairErr.Token)
	assert.True(t, IsUsageError(err))
}

func TestParseKVPair_EmptyKey(t *testing.T) {
	_, err := ParseKVPair("=value")

	var pairErr *InvalidBodyPairError
	require.ErrorAs(t, err, &pairErr)
	assert.Equal(t, "=value", pairErr.Token)
}

func TestParseURL(t *testing.T) {
	u, err := ParseURL("https://example.com/")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/", u)
}

func TestParseURL_Invalid(t *testing.T) {
	for _, raw := range []string{
		"not-a-url",
		"/relative/path",
		"example.com",
		"://missing-scheme",
	} {
		_, err := ParseURL(raw)

		var urlErr *InvalidURLError
		require.ErrorAs(t, err, &urlErr, "url %q", raw)
		assert.Equal(t, raw, urlErr.URL)
		assert.True(t, IsUsageError(err))
	}
}

func TestNewDescriptor(t *testing.T) {
	desc, err := NewDescriptor(MethodPost, "https://example.com/", []string{"name=joe", "age=5"})
	require.NoError(t, err)

	assert.Equal(t, MethodPost, desc.Method)
	assert.Equal(t, "https://example.com/", desc.URL)
	assert.Equal(t, []KVPair{
		{Key: "name", Value: "joe"},
		{Key: "age", Value: "5"},
	}, desc.Body)
}

func TestNewDescriptor_InvalidURL(t *testing.T) {
	_, err := NewDescriptor(MethodGet, "not-a-url", nil)

	var urlErr *InvalidURLError
	assert.ErrorAs(t, err, &urlErr)
}

func TestNewDescriptor_InvalidBodyPair(t *testing.T) {
	_, err := NewDescriptor(MethodPost, "https://example.com/", []string{"a=1", "broken"})

	var pairErr *InvalidBodyPairError
	assert.ErrorAs(t, err, &pairErr)
}

func TestNewDescriptor_EmptyBody(t *testing.T) {
	desc, err := NewDescriptor(MethodPost, "https://example.com/", nil)
	require.NoError(t, err)

	assert.Empty(t, desc.Body)
}
